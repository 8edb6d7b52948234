// Package store persists materialized profiles and discovered search
// hits in Postgres.
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

	"github.com/fastboardai/linkgraph/record"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	Pool *pgxpool.Pool
}

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, url string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() { s.Pool.Close() }

// SaveProfile upserts a materialized profile keyed by URN. The full
// record is kept as JSONB; a few columns are lifted out for listing.
func (s *Store) SaveProfile(ctx context.Context, p *record.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	_, err = s.Pool.Exec(ctx, `
        INSERT INTO profiles (urn, public_identifier, full_name, headline, data)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (urn) DO UPDATE
        SET public_identifier = EXCLUDED.public_identifier,
            full_name = EXCLUDED.full_name,
            headline = EXCLUDED.headline,
            data = EXCLUDED.data,
            fetched_at = now()
    `, p.URN, p.PublicIdentifier, p.FullName, p.Headline, data)
	return err
}

// GetProfile loads a profile by public identifier.
func (s *Store) GetProfile(ctx context.Context, publicID string) (*record.Profile, error) {
	var data []byte
	err := s.Pool.QueryRow(ctx, `
        SELECT data FROM profiles WHERE public_identifier = $1
    `, publicID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p record.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding stored profile: %w", err)
	}
	return &p, nil
}

// ProfileRow is one row of a profile listing.
type ProfileRow struct {
	URN              string    `json:"urn"`
	PublicIdentifier string    `json:"public_identifier"`
	FullName         string    `json:"full_name"`
	Headline         string    `json:"headline"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// ListProfiles returns stored profiles, most recently fetched first.
func (s *Store) ListProfiles(ctx context.Context) ([]ProfileRow, error) {
	rows, err := s.Pool.Query(ctx, `
        SELECT urn, public_identifier, full_name, headline, fetched_at
        FROM profiles
        ORDER BY fetched_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProfileRow
	for rows.Next() {
		var r ProfileRow
		if err := rows.Scan(&r.URN, &r.PublicIdentifier, &r.FullName, &r.Headline, &r.FetchedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateHarvest records the start of a discovery run and returns its id.
func (s *Store) CreateHarvest(ctx context.Context, query string) (string, error) {
	id := uuid.NewString()
	_, err := s.Pool.Exec(ctx, `
        INSERT INTO harvests (id, query) VALUES ($1, $2)
    `, id, query)
	if err != nil {
		return "", err
	}
	return id, nil
}

// SaveHits inserts search hits, ignoring URLs already on file. Returns
// the number of new rows.
func (s *Store) SaveHits(ctx context.Context, harvestID string, hits []record.SearchHit) (int, error) {
	count := 0
	for _, h := range hits {
		if h.URL == "" {
			continue
		}
		tag, err := s.Pool.Exec(ctx, `
            INSERT INTO search_hits (harvest_id, url, full_name, headline, public_identifier)
            VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5)
            ON CONFLICT (url) DO NOTHING
        `, harvestID, h.URL, h.FullName, h.Headline, h.PublicIdentifier)
		if err != nil {
			return count, err
		}
		count += int(tag.RowsAffected())
	}
	return count, nil
}

// HitRow is one row of a search-hit listing.
type HitRow struct {
	URL              string    `json:"url"`
	FullName         string    `json:"full_name"`
	Headline         string    `json:"headline"`
	PublicIdentifier string    `json:"public_identifier"`
	FoundAt          time.Time `json:"found_at"`
}

// ListHits returns stored search hits, most recent first.
func (s *Store) ListHits(ctx context.Context, limit int) ([]HitRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.Pool.Query(ctx, `
        SELECT url, full_name, headline, public_identifier, found_at
        FROM search_hits
        ORDER BY found_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HitRow
	for rows.Next() {
		var r HitRow
		if err := rows.Scan(&r.URL, &r.FullName, &r.Headline, &r.PublicIdentifier, &r.FoundAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
