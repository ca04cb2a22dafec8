package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
)

// SessionRepository implements session.Repository.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*session.Session, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, display_name, negotiation_item_id, negotiation_stage, updated_at
		FROM sessions WHERE user_id=$1
	`, userID)
	return scanSession(row)
}

func (r *SessionRepository) Upsert(ctx context.Context, s *session.Session) error {
	var itemID *int
	var stage *string
	if s.Negotiation != nil {
		itemID = &s.Negotiation.ItemID
		stageVal := string(s.Negotiation.Stage)
		stage = &stageVal
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (user_id, display_name, negotiation_item_id, negotiation_stage, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name=EXCLUDED.display_name,
			negotiation_item_id=EXCLUDED.negotiation_item_id,
			negotiation_stage=EXCLUDED.negotiation_stage,
			updated_at=EXCLUDED.updated_at
	`, s.UserID, s.DisplayName, itemID, stage, s.UpdatedAt)
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id=$1`, userID)
	return err
}

func scanSession(row pgx.Row) (*session.Session, error) {
	var s session.Session
	var itemID *int
	var stage *string
	var updatedAt time.Time
	if err := row.Scan(&s.UserID, &s.DisplayName, &itemID, &stage, &updatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.UpdatedAt = updatedAt
	if itemID != nil && stage != nil {
		s.Negotiation = &session.Negotiation{ItemID: *itemID, Stage: session.Stage(*stage)}
	}
	return &s, nil
}
