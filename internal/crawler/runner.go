package crawler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dexQuery/internal/model"
	"dexQuery/internal/storage"
)

// RunConfig holds runtime settings for a crawl.
type RunConfig struct {
	Name      string
	PageLimit uint64
	MaxPages  uint64
	StartKey  []byte
}

// Runner walks every page of a list query and writes the records to storage.
type Runner struct {
	cfg     RunConfig
	fetch   Fetcher
	storage storage.Storage
	cursors CursorStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner builds a Runner with its dependencies. cursors may be nil.
func NewRunner(cfg RunConfig, fetch Fetcher, storageSink storage.Storage, cursors CursorStore, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		fetch:   fetch,
		storage: storageSink,
		cursors: cursors,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes the crawl loop until the last page or MaxPages.
func (r *Runner) Run(ctx context.Context) error {
	if r.fetch == nil {
		return fmt.Errorf("fetcher is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if r.cfg.PageLimit == 0 {
		return fmt.Errorf("page limit must be greater than zero")
	}

	key := r.cfg.StartKey
	var page uint64
	if r.cursors != nil && len(key) == 0 {
		saved, savedPage, ok, err := r.cursors.LoadCursor(ctx, r.cfg.Name)
		if err != nil {
			return fmt.Errorf("load cursor: %w", err)
		}
		if ok && len(saved) > 0 {
			key, page = saved, savedPage
			r.logger.Info("resume from checkpoint", zap.String("crawl", r.cfg.Name), zap.Uint64("page", page))
		}
	}

	var fetched uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if r.cfg.MaxPages > 0 && fetched >= r.cfg.MaxPages {
			r.logger.Info("page budget reached", zap.String("crawl", r.cfg.Name), zap.Uint64("pages", fetched))
			return nil
		}

		records, pagination, err := r.fetch(ctx, &model.PageRequest{Key: key, Limit: r.cfg.PageLimit})
		if err != nil {
			return fmt.Errorf("fetch page %d: %w", page+1, err)
		}
		page++
		fetched++

		capturedAt := r.now().UTC().Format(time.RFC3339Nano)
		for i := range records {
			records[i].Page = page
			records[i].CapturedAt = capturedAt
		}
		if err := r.storage.PutRecords(ctx, records); err != nil {
			return fmt.Errorf("store page %d: %w", page, err)
		}
		r.logger.Info("page complete", zap.String("crawl", r.cfg.Name), zap.Uint64("page", page), zap.Int("records", len(records)))

		if !pagination.HasNext() {
			if err := r.saveCursor(ctx, nil, 0); err != nil {
				return err
			}
			r.logger.Info("crawl complete", zap.String("crawl", r.cfg.Name), zap.Uint64("pages", page))
			return nil
		}
		if bytes.Equal(pagination.NextKey, key) {
			return fmt.Errorf("page %d returned its own key as next key", page)
		}

		key = pagination.NextKey
		if err := r.saveCursor(ctx, key, page); err != nil {
			return err
		}
	}
}

func (r *Runner) saveCursor(ctx context.Context, key []byte, page uint64) error {
	if r.cursors == nil {
		return nil
	}
	if err := r.cursors.SaveCursor(ctx, r.cfg.Name, key, page); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}
