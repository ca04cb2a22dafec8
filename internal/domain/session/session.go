package session

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Stage represents the input a user's active negotiation is waiting for.
type Stage string

const (
	// StageNone is the zero value used by transition results; a persisted
	// session never stores it — no negotiation is Negotiation == nil.
	StageNone            Stage = ""
	StageCollectingName  Stage = "COLLECTING_NAME"
	StageCollectingOffer Stage = "COLLECTING_OFFER"
)

// Negotiation tracks an in-progress purchase discussion for one item.
type Negotiation struct {
	ItemID int   `json:"itemId"`
	Stage  Stage `json:"stage"`
}

// Session is the durable per-user conversation record, keyed by the
// messaging endpoint identifier (a phone number for WhatsApp).
type Session struct {
	UserID      string       `json:"userId"`
	DisplayName string       `json:"displayName,omitempty"`
	Negotiation *Negotiation `json:"negotiation,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// New creates an empty session for a user making first contact.
func New(userID string) *Session {
	return &Session{UserID: userID, UpdatedAt: time.Now().UTC()}
}

// Negotiating reports whether the session has an active negotiation in
// the given stage.
func (s *Session) Negotiating(stage Stage) bool {
	return s != nil && s.Negotiation != nil && s.Negotiation.Stage == stage
}

// Clone returns a deep copy, so stores can hand out sessions that callers
// may mutate freely.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	copied := *s
	if s.Negotiation != nil {
		n := *s.Negotiation
		copied.Negotiation = &n
	}
	return &copied
}

// ErrInvalidDisplayName is returned when a submitted name fails validation.
var ErrInvalidDisplayName = errors.New("display name must be at least 2 characters of letters, spaces, hyphens or apostrophes")

var displayNamePattern = regexp.MustCompile(`^[A-Za-z' -]+$`)

// ValidateDisplayName checks a raw name submission and returns the
// trimmed form on success.
func ValidateDisplayName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len(name) < 2 {
		return "", ErrInvalidDisplayName
	}
	if !displayNamePattern.MatchString(name) {
		return "", ErrInvalidDisplayName
	}
	return name, nil
}

func ValidateStage(stage Stage) error {
	switch stage {
	case StageCollectingName, StageCollectingOffer:
		return nil
	default:
		return errors.New("invalid negotiation stage")
	}
}
