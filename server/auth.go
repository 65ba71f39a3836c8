// This file implements the credential store backing POST /v1/login
// (SPEC_FULL §11.2). It follows the teacher's server/tunas/auth.go pattern of
// storing a bcrypt hash and comparing it with bcrypt.CompareHashAndPassword,
// and the server/dao/sqlite init/CREATE-TABLE-IF-NOT-EXISTS pattern for the
// table itself, living in the same sqlite file as server/cache.
package server

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the teacher hardcodes in
// server/tunas/users.go's GenerateFromPassword calls.
const bcryptCost = 14

// Credentials is a sqlite-backed store of API keys, each identified by a
// uuid, used to authenticate POST /v1/login requests.
type Credentials struct {
	db *sql.DB
}

// NewCredentials wraps db, creating the credentials table if it does not yet
// exist. db is expected to be the same handle backing a cache.Cache, so the
// validation service's cache and credential store share one sqlite file.
func NewCredentials(db *sql.DB) (*Credentials, error) {
	c := &Credentials{db: db}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS credentials (
		id TEXT NOT NULL PRIMARY KEY,
		api_key_hash TEXT NOT NULL
	);`); err != nil {
		return nil, err
	}
	return c, nil
}

// Create registers a new API key, returning the generated credential ID used
// as the JWT subject.
func (c *Credentials) Create(ctx context.Context, apiKey string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcryptCost)
	if err != nil {
		return uuid.UUID{}, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, err
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO credentials (id, api_key_hash) VALUES (?, ?)`,
		id.String(), string(hash),
	)
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

// Authenticate looks up apiKey's owning credential ID by comparing the
// bcrypt hash of every stored credential. Returns ErrBadCredentials if no
// stored hash matches.
func (c *Credentials) Authenticate(ctx context.Context, apiKey string) (uuid.UUID, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, api_key_hash FROM credentials`)
	if err != nil {
		return uuid.UUID{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var idStr, hash string
		if err := rows.Scan(&idStr, &hash); err != nil {
			return uuid.UUID{}, err
		}

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil {
			return uuid.Parse(idStr)
		}
	}
	if err := rows.Err(); err != nil {
		return uuid.UUID{}, err
	}

	return uuid.UUID{}, ErrBadCredentials
}

// Exists reports whether a credential with the given ID is still registered,
// the way validateAndLookupJWTUser re-checks the subject still exists.
func (c *Credentials) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	row := c.db.QueryRowContext(ctx, `SELECT 1 FROM credentials WHERE id = ?`, id.String())
	var x int
	err := row.Scan(&x)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
