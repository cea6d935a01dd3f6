package docload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"

	"go.uber.org/zap"
)

type Putter interface {
	Put(ctx context.Context, doc domain.Document) error
}

// Load upserts every <collection>/<id>.json file found in fsys and
// returns the number of documents written. Files at other depths are
// ignored.
func Load(ctx context.Context, fsys fs.FS, store Putter, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	n := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}
		parts := strings.Split(p, "/")
		if len(parts) != 2 {
			log.Debug("docload_skip", zap.String("path", p))
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		data, err := decode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		doc := domain.Document{
			Collection: parts[0],
			ID:         strings.TrimSuffix(parts[1], ".json"),
			Data:       data,
		}
		if err := store.Put(ctx, doc); err != nil {
			return fmt.Errorf("put %s: %w", doc.Key(), err)
		}
		log.Info("docload_put", zap.String("key", doc.Key()))
		n++
		return nil
	})
	return n, err
}

func decode(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("document must be a JSON object")
	}
	return data, nil
}
