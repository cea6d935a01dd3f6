package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DocumentRepo struct{ db *DB }

func NewDocumentRepo(db *DB) *DocumentRepo { return &DocumentRepo{db: db} }

// Get decodes numbers as json.Number so values reach the formatter with
// their stored precision.
func (r *DocumentRepo) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	const q = `SELECT data, updated_at FROM documents WHERE collection=$1 AND id=$2`
	log := logx.WithFields(ctx).With(
		zap.String("repo", "document"),
		zap.String("operation", "Get"),
		zap.String("collection", collection),
		zap.String("id", id),
	)
	out := domain.Document{Collection: collection, ID: id}
	var raw []byte
	err := r.db.Pool.QueryRow(ctx, q, collection, id).Scan(&raw, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Info("sql.query_no_rows")
		return domain.Document{}, application.ErrNotFound
	}
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return domain.Document{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out.Data); err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", out.Key(), err)
	}
	if out.Data == nil {
		out.Data = map[string]any{}
	}
	return out, nil
}

func (r *DocumentRepo) Put(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc.Key(), err)
	}
	const up = `
        INSERT INTO documents(collection, id, data, updated_at)
        VALUES ($1, $2, $3::jsonb, NOW())
        ON CONFLICT (collection, id) DO UPDATE
          SET data=EXCLUDED.data, updated_at=EXCLUDED.updated_at`
	_, err = r.db.Pool.Exec(ctx, up, doc.Collection, doc.ID, string(data))
	return err
}
