package pg

import (
	"context"
	"errors"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SubscriptionRepo struct{ db *DB }

func NewSubscriptionRepo(db *DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

// SetStatus overwrites the record; updated is the database clock.
func (r *SubscriptionRepo) SetStatus(ctx context.Context, email string, status domain.SubscriptionStatus) error {
	const up = `
        INSERT INTO subscriptions(email, subscription, updated)
        VALUES ($1, $2, NOW())
        ON CONFLICT (email) DO UPDATE
          SET subscription=EXCLUDED.subscription, updated=NOW()`
	log := logx.WithFields(ctx).With(
		zap.String("repo", "subscription"),
		zap.String("operation", "SetStatus"),
		zap.String("email", email),
		zap.String("status", string(status)),
	)
	tag, err := r.db.Pool.Exec(ctx, up, email, string(status))
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return err
	}
	log.Info("sql.exec_success", zap.Int64("rows_affected", tag.RowsAffected()))
	return nil
}

func (r *SubscriptionRepo) Get(ctx context.Context, email string) (domain.SubscriptionRecord, error) {
	const q = `SELECT email, subscription, updated FROM subscriptions WHERE email=$1`
	var out domain.SubscriptionRecord
	var status string
	err := r.db.Pool.QueryRow(ctx, q, email).Scan(&out.Email, &status, &out.Updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SubscriptionRecord{}, application.ErrNotFound
	}
	if err != nil {
		return domain.SubscriptionRecord{}, err
	}
	out.Subscription = domain.SubscriptionStatus(status)
	return out, nil
}
