package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dexQuery/internal/model"
)

//go:embed schema.sql
var schema string

// Store provides Postgres persistence for snapshot records and crawl state.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the snapshot tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PutRecords upserts a batch of snapshot records in one round trip.
func (s *Store) PutRecords(ctx context.Context, records []model.SnapshotRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, record := range records {
		if err := queueRecord(batch, record); err != nil {
			return err
		}
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert %s: %w", records[i].Key(), err)
		}
	}
	return nil
}

func queueRecord(batch *pgx.Batch, record model.SnapshotRecord) error {
	capturedAt, err := time.Parse(time.RFC3339Nano, record.CapturedAt)
	if err != nil {
		return fmt.Errorf("record %s captured_at: %w", record.Key(), err)
	}

	switch {
	case record.LimitOrderTranche != nil:
		if err := queueTranche(batch, *record.LimitOrderTranche, record.Kind == "all_inactive_limit_order_tranche", capturedAt); err != nil {
			return fmt.Errorf("record %s: %w", record.Key(), err)
		}
	case record.PoolMetadata != nil:
		m := record.PoolMetadata
		batch.Queue(`
			INSERT INTO pool_metadata (id, tick, fee, token0, token1, captured_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			ON CONFLICT (id)
			DO UPDATE SET
				tick = EXCLUDED.tick,
				fee = EXCLUDED.fee,
				token0 = EXCLUDED.token0,
				token1 = EXCLUDED.token1,
				captured_at = EXCLUDED.captured_at,
				updated_at = now()
		`,
			int64(m.ID),
			m.Tick,
			int64(m.Fee),
			m.PairID.Token0,
			m.PairID.Token1,
			capturedAt,
		)
	case record.Liquidity != nil:
		payload, err := json.Marshal(record.Liquidity)
		if err != nil {
			return fmt.Errorf("marshal liquidity %s: %w", record.Key(), err)
		}
		batch.Queue(`
			INSERT INTO tick_liquidity (record_key, kind, payload, captured_at, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (record_key)
			DO UPDATE SET
				kind = EXCLUDED.kind,
				payload = EXCLUDED.payload,
				captured_at = EXCLUDED.captured_at,
				updated_at = now()
		`,
			record.Key(),
			string(record.Liquidity.Kind()),
			payload,
			capturedAt,
		)
	default:
		return fmt.Errorf("record of kind %s has no payload", record.Kind)
	}
	return nil
}

func queueTranche(batch *pgx.Batch, t model.LimitOrderTranche, inactive bool, capturedAt time.Time) error {
	amounts, err := t.Amounts()
	if err != nil {
		return err
	}
	batch.Queue(`
		INSERT INTO limit_order_tranches (
			maker_denom, taker_denom, tick_index, tranche_key, inactive,
			reserves_maker_denom, reserves_taker_denom, total_maker_denom, total_taker_denom,
			expiration_time, price_taker_to_maker, captured_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())
		ON CONFLICT (maker_denom, taker_denom, tick_index, tranche_key)
		DO UPDATE SET
			inactive = EXCLUDED.inactive,
			reserves_maker_denom = EXCLUDED.reserves_maker_denom,
			reserves_taker_denom = EXCLUDED.reserves_taker_denom,
			total_maker_denom = EXCLUDED.total_maker_denom,
			total_taker_denom = EXCLUDED.total_taker_denom,
			expiration_time = EXCLUDED.expiration_time,
			price_taker_to_maker = EXCLUDED.price_taker_to_maker,
			captured_at = EXCLUDED.captured_at,
			updated_at = now()
	`,
		t.Key.TradePairID.MakerDenom,
		t.Key.TradePairID.TakerDenom,
		t.Key.TickIndexTakerToMaker,
		t.Key.TrancheKey,
		inactive,
		amounts.ReservesMakerDenom,
		amounts.ReservesTakerDenom,
		amounts.TotalMakerDenom,
		amounts.TotalTakerDenom,
		t.ExpirationTime,
		amounts.PriceTakerToMaker,
		capturedAt,
	)
	return nil
}

// LoadCursor returns the saved page cursor for a crawl.
func (s *Store) LoadCursor(ctx context.Context, name string) ([]byte, uint64, bool, error) {
	if name == "" {
		return nil, 0, false, fmt.Errorf("state name required")
	}
	var (
		nextKey []byte
		page    int64
	)
	row := s.pool.QueryRow(ctx, `SELECT next_key, page FROM crawler_state WHERE name=$1`, name)
	if err := row.Scan(&nextKey, &page); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}
	return nextKey, uint64(page), true, nil
}

// SaveCursor upserts the page cursor for a crawl.
func (s *Store) SaveCursor(ctx context.Context, name string, nextKey []byte, page uint64) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO crawler_state (name, next_key, page, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE
		SET next_key = EXCLUDED.next_key, page = EXCLUDED.page, updated_at = now()
	`, name, nextKey, int64(page))
	return err
}
