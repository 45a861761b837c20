package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"padeltour-server/pkg/db"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// PGStore keeps tournaments in the `tournaments` table
// The tournament itself lives in the JSONB `data` column
type PGStore struct {
	conn *sql.DB
}

var _ Store = (*PGStore)(nil)

// NewPGStore returns a store backed by the database
func NewPGStore(conn *sql.DB) *PGStore {
	return &PGStore{conn: conn}
}

func scanTournament(row db.Scanner) (*Tournament, error) {
	var data []byte
	var created, updated time.Time
	if err := row.Scan(&data, &created, &updated); err != nil {
		return nil, err
	}

	var t Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("could not decode tournament: %w", err)
	}

	t.Created = created
	t.Updated = updated
	return &t, nil
}

// Create inserts the tournament
func (p *PGStore) Create(ctx context.Context, t *Tournament) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO tournaments (uuid, name, format, data)
VALUES ($1, $2, $3, $4)
RETURNING created, updated`

	row := p.conn.QueryRowContext(ctx, query, t.UUID, t.Name, t.Format, data)
	if err := row.Scan(&t.Created, &t.Updated); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateKey
		}

		return fmt.Errorf("could not create tournament: %w", err)
	}

	return nil
}

// Get returns the tournament by its UUID
func (p *PGStore) Get(ctx context.Context, id string) (*Tournament, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTournamentNotFound
	}

	const query = `
SELECT data, created, updated
FROM tournaments
WHERE uuid = $1`

	t, err := scanTournament(p.conn.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}

		return nil, err
	}

	return t, nil
}

// Save overwrites the stored tournament
func (p *PGStore) Save(ctx context.Context, t *Tournament) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	const query = `
UPDATE tournaments
SET name = $1,
    data = $2,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE uuid = $3
RETURNING updated`

	if err := p.conn.QueryRowContext(ctx, query, t.Name, data, t.UUID).Scan(&t.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTournamentNotFound
		}

		return fmt.Errorf("could not save tournament: %w", err)
	}

	return nil
}

// List returns tournaments, newest first
func (p *PGStore) List(ctx context.Context, offset int64, limit int) ([]*Tournament, error) {
	const query = `
SELECT data, created, updated
FROM tournaments
ORDER BY created DESC, uuid
OFFSET $1
LIMIT $2`

	rows, err := p.conn.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, t)
	}

	return records, rows.Err()
}
