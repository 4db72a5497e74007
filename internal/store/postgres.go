package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/types"
)

// Postgres persists to a Supabase Postgres instance through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewPostgres connects, pings and ensures the schema. Callers fall back to
// the memory store when this returns an error.
func NewPostgres(ctx context.Context, dsn string, log *logger.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	p := &Postgres{pool: pool, log: log.Component("store.postgres")}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	p.log.Info("connected to Postgres")
	return p, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS farmers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			mobile TEXT NOT NULL UNIQUE,
			language TEXT NOT NULL DEFAULT 'en',
			village_city TEXT,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS listings (
			id UUID PRIMARY KEY,
			farmer_mobile TEXT NOT NULL,
			product_info JSONB NOT NULL,
			suggestions JSONB NOT NULL,
			improvement_suggestions JSONB,
			transcript JSONB NOT NULL,
			audio_url TEXT,
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'sold', 'expired', 'cancelled')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_listings_mobile_created
			ON listings(farmer_mobile, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_listings_unsold
			ON listings(created_at) WHERE status = 'pending';
	`)
	return err
}

func (p *Postgres) Available() bool { return true }

func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) StoreListing(ctx context.Context, rec types.ListingRecord) (types.ListingRecord, error) {
	now := time.Now().UTC()
	rec.ID = uuid.New().String()
	if rec.Status == "" {
		rec.Status = types.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	productJSON, _ := json.Marshal(rec.ProductInfo)
	suggestJSON, _ := json.Marshal(rec.Suggestions)
	transcriptJSON, _ := json.Marshal(rec.Transcript)

	_, err := p.pool.Exec(ctx, `
		INSERT INTO listings (id, farmer_mobile, product_info, suggestions, transcript, audio_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`,
		rec.ID, rec.FarmerMobile, productJSON, suggestJSON, transcriptJSON,
		rec.AudioURL, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return types.ListingRecord{}, fmt.Errorf("insert listing: %w", err)
	}
	return rec, nil
}

func (p *Postgres) ListByMobile(ctx context.Context, mobile string) ([]types.ListingRecord, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, farmer_mobile, product_info, suggestions, improvement_suggestions,
		       transcript, COALESCE(audio_url, ''), status, created_at, updated_at
		FROM listings WHERE farmer_mobile = $1
		ORDER BY created_at DESC`, mobile)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

func (p *Postgres) UpdateStatus(ctx context.Context, id string, status types.ProductStatus) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) UpdateSuggestions(ctx context.Context, id string, imp types.ImprovementSuggestions) error {
	impJSON, _ := json.Marshal(imp)
	tag, err := p.pool.Exec(ctx, `
		UPDATE listings SET improvement_suggestions = $1, updated_at = NOW() WHERE id = $2`, impJSON, id)
	if err != nil {
		return fmt.Errorf("update suggestions: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListUnsold(ctx context.Context, olderThanDays int) ([]types.ListingRecord, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, farmer_mobile, product_info, suggestions, improvement_suggestions,
		       transcript, COALESCE(audio_url, ''), status, created_at, updated_at
		FROM listings
		WHERE status = 'pending' AND created_at < NOW() - ($1 * INTERVAL '1 day')
		ORDER BY created_at ASC`, olderThanDays)
	if err != nil {
		return nil, fmt.Errorf("query unsold: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

func (p *Postgres) RegisterFarmer(ctx context.Context, f types.FarmerProfile) (types.FarmerProfile, error) {
	f.ID = uuid.New().String()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO farmers (id, name, email, mobile, language, village_city, password_hash, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8)`,
		f.ID, f.Name, f.Email, f.Mobile, f.Language, f.VillageCity, f.PasswordHash, f.CreatedAt,
	)
	if err != nil {
		return types.FarmerProfile{}, fmt.Errorf("insert farmer: %w", err)
	}
	return f, nil
}

func (p *Postgres) FindFarmerByMobile(ctx context.Context, mobile string) (types.FarmerProfile, error) {
	var f types.FarmerProfile
	err := p.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(email, ''), mobile, language, COALESCE(village_city, ''), password_hash, created_at
		FROM farmers WHERE mobile = $1`, mobile).
		Scan(&f.ID, &f.Name, &f.Email, &f.Mobile, &f.Language, &f.VillageCity, &f.PasswordHash, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.FarmerProfile{}, ErrNotFound
		}
		return types.FarmerProfile{}, fmt.Errorf("query farmer: %w", err)
	}
	return f, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanListings(rows rowScanner) ([]types.ListingRecord, error) {
	var out []types.ListingRecord
	for rows.Next() {
		var (
			rec            types.ListingRecord
			productJSON    []byte
			suggestJSON    []byte
			improveJSON    []byte
			transcriptJSON []byte
		)
		if err := rows.Scan(&rec.ID, &rec.FarmerMobile, &productJSON, &suggestJSON, &improveJSON,
			&transcriptJSON, &rec.AudioURL, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		_ = json.Unmarshal(productJSON, &rec.ProductInfo)
		_ = json.Unmarshal(suggestJSON, &rec.Suggestions)
		_ = json.Unmarshal(transcriptJSON, &rec.Transcript)
		if len(improveJSON) > 0 {
			var imp types.ImprovementSuggestions
			if json.Unmarshal(improveJSON, &imp) == nil {
				rec.Improvements = &imp
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
