package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/pricing"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
)

// Service dispatches inbound messages: it loads the user's session,
// classifies the text, runs a stateless handler or a state machine
// transition, and persists the session when state changed. All work for
// one user is serialized behind a per-user lock held across store I/O.
type Service struct {
	sessions session.Repository
	catalog  catalog.Repository
	machine  *Machine
	locks    *keyedMutex
	logger   zerolog.Logger
}

// NewService creates the conversation dispatcher.
func NewService(sessions session.Repository, catalogRepo catalog.Repository, policy *pricing.Policy, logger zerolog.Logger) *Service {
	logger = logger.With().Str("service", "conversation").Logger()
	return &Service{
		sessions: sessions,
		catalog:  catalogRepo,
		machine:  NewMachine(catalogRepo, policy, logger),
		locks:    newKeyedMutex(),
		logger:   logger,
	}
}

// HandleMessage processes one inbound text for a user and returns the
// reply to render. Every classifiable input ends in a reply; only store
// failures surface as errors.
func (s *Service) HandleMessage(ctx context.Context, userID, body string) (*Reply, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user identifier is required")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	cmd := Classify(body, sess)
	s.logger.Debug().Str("user_id", userID).Str("command", string(cmd.Kind)).Msg("message classified")

	switch cmd.Kind {
	case CmdStart:
		return welcomeReply(), nil
	case CmdRecommend:
		return recommendReply(), nil
	case CmdBrowse:
		items, err := s.catalog.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list catalog: %w", err)
		}
		return listReply("Here's everything we have in stock:", items), nil
	case CmdCategory:
		items, err := s.catalog.ListByCategory(ctx, cmd.Category)
		if err != nil {
			return nil, fmt.Errorf("list catalog: %w", err)
		}
		return listReply(fmt.Sprintf("Our %s machines:", cmd.Category.Label()), items), nil
	case CmdView:
		return s.viewItem(ctx, cmd.ItemID)
	case CmdNegotiate:
		if sess == nil {
			sess = session.New(userID)
		}
		outcome, err := s.machine.Negotiate(ctx, sess, cmd.ItemID)
		if err != nil {
			return nil, err
		}
		return s.finish(ctx, sess, outcome)
	case CmdName:
		outcome := s.machine.SubmitName(sess, cmd.Name)
		return s.finish(ctx, sess, outcome)
	case CmdOffer:
		if !sess.Negotiating(session.StageCollectingOffer) {
			// An offer with nothing under negotiation has no transition.
			return helpReply(), nil
		}
		outcome, err := s.machine.SubmitOffer(ctx, sess, cmd.Amount)
		if err != nil {
			return nil, err
		}
		return s.finish(ctx, sess, outcome)
	default:
		return helpReply(), nil
	}
}

func (s *Service) viewItem(ctx context.Context, itemID int) (*Reply, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return itemNotFoundReply(itemID), nil
	}
	reply := NewReply().Textf(
		"%s\nPrice: %.2f\nCondition: %s\nCategory: %s",
		item.Name, item.Price, item.Condition, item.Category.Label(),
	)
	reply.Image(item.ImageURL)
	reply.Textf("Like it? Reply with: negotiate %d", item.ID)
	return reply, nil
}

// finish persists the session when a transition mutated it, then hands
// back the transition's reply.
func (s *Service) finish(ctx context.Context, sess *session.Session, outcome Outcome) (*Reply, error) {
	if outcome.Mutated {
		sess.UpdatedAt = time.Now().UTC()
		if err := s.sessions.Upsert(ctx, sess); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	return outcome.Reply, nil
}
