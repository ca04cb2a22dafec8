package conversation

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/pricing"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
)

// Machine owns the stage transitions of a single user's active
// negotiation. It mutates the session handed to it; the caller persists
// when an Outcome reports a mutation.
type Machine struct {
	catalog catalog.Repository
	policy  *pricing.Policy
	logger  zerolog.Logger
}

// NewMachine creates a negotiation state machine.
func NewMachine(catalogRepo catalog.Repository, policy *pricing.Policy, logger zerolog.Logger) *Machine {
	return &Machine{
		catalog: catalogRepo,
		policy:  policy,
		logger:  logger.With().Str("component", "negotiation").Logger(),
	}
}

// Outcome is the result of one transition attempt.
type Outcome struct {
	Reply   *Reply
	Mutated bool
}

// Negotiate opens (or silently replaces) a negotiation for the given
// item and moves it to the name-collection stage. An unknown item leaves
// the session untouched.
func (m *Machine) Negotiate(ctx context.Context, sess *session.Session, itemID int) (Outcome, error) {
	item, err := m.catalog.GetByID(ctx, itemID)
	if err != nil {
		return Outcome{}, err
	}
	if item == nil {
		return Outcome{Reply: itemNotFoundReply(itemID)}, nil
	}

	sess.Negotiation = &session.Negotiation{ItemID: item.ID, Stage: session.StageCollectingName}
	reply := NewReply().Textf(
		"Great choice! The %s goes for %.2f. Before we talk numbers, what's your name?",
		item.Name, item.Price,
	)
	return Outcome{Reply: reply, Mutated: true}, nil
}

// SubmitName validates a name attempt while the negotiation is in the
// name-collection stage. A rejected name leaves the stage unchanged and
// the user may retry indefinitely.
func (m *Machine) SubmitName(sess *session.Session, raw string) Outcome {
	name, err := session.ValidateDisplayName(raw)
	if err != nil || isReservedWord(name) {
		reply := NewReply().Textf(
			"That doesn't look like a name. Please reply with your name — letters, spaces, hyphens and apostrophes only.",
		)
		return Outcome{Reply: reply}
	}

	sess.DisplayName = name
	sess.Negotiation.Stage = session.StageCollectingOffer
	reply := NewReply().Textf(
		"Thanks %s! How much are you willing to offer? Reply with: offer <amount>",
		name,
	)
	return Outcome{Reply: reply, Mutated: true}
}

// SubmitOffer resolves an offer attempt while the negotiation is in the
// offer-collection stage. A non-numeric or below-threshold offer leaves
// the stage unchanged; an accepted offer clears the negotiation.
func (m *Machine) SubmitOffer(ctx context.Context, sess *session.Session, amountRaw string) (Outcome, error) {
	item, err := m.catalog.GetByID(ctx, sess.Negotiation.ItemID)
	if err != nil {
		return Outcome{}, err
	}
	if item == nil {
		// The item vanished from the catalog mid-negotiation; nothing
		// sensible is left to negotiate over.
		itemID := sess.Negotiation.ItemID
		sess.Negotiation = nil
		return Outcome{Reply: itemNotFoundReply(itemID), Mutated: true}, nil
	}

	amount, parseErr := strconv.ParseInt(strings.TrimSpace(amountRaw), 10, 64)
	if parseErr != nil {
		reply := NewReply().Textf("Please send a numeric offer, like: offer %d", int64(item.Price))
		return Outcome{Reply: reply}, nil
	}

	accepted, err := m.policy.Accepts(amount, item.Price)
	if err != nil {
		return Outcome{}, err
	}
	if !accepted {
		reply := NewReply().Textf(
			"Sorry %s, %d is too low for the %s. The minimum we can accept is %s. Care to try again?",
			sess.DisplayName, amount, item.Name, pricing.FormatMinimum(item.Price),
		)
		return Outcome{Reply: reply}, nil
	}

	dealRef := uuid.Must(uuid.NewV7())
	sess.Negotiation = nil
	m.logger.Info().
		Str("user_id", sess.UserID).
		Str("deal_ref", dealRef.String()).
		Int("item_id", item.ID).
		Int64("amount", amount).
		Msg("deal accepted")

	reply := NewReply().Textf(
		"Deal, %s! The %s is yours for %d. Your reference is %s — our sales team will contact you to arrange payment and delivery.",
		sess.DisplayName, item.Name, amount, dealRef,
	)
	return Outcome{Reply: reply, Mutated: true}, nil
}

func itemNotFoundReply(itemID int) *Reply {
	return NewReply().Textf("Sorry, there's no item %d in our catalog. Reply browse to see what's available.", itemID)
}
