// Package cache stores parse results in sqlite so the server (SPEC_FULL
// §11.2) does not re-lex and re-parse identical source text on every
// request. It follows the teacher's server/dao/sqlite pattern: sql.Open with
// the "sqlite" driver from modernc.org/sqlite, CREATE TABLE IF NOT EXISTS in
// an init step, and a wrapDBError helper named after the one in
// server/dao/sqlite/sqlite.go; here it only prefixes database errors with
// "cache:" and maps none of them to sentinels.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	_ "modernc.org/sqlite"

	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/internal/snapshot"
)

// ErrNotFound is returned by Get when no cached entry exists for a source
// text, mirroring dao.ErrNotFound.
var ErrNotFound = errors.New("no cached parse result for this source")

// Cache is a sqlite-backed store mapping source text to the diagnostics
// produced by parsing it, keyed by an FNV-1a hash of the text so the key
// column stays a fixed-width integer rather than the full source.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) a sqlite database at file and ensures the
// results table exists.
func Open(file string) (*Cache, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	c := &Cache{db: db}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS parse_results (
		source_hash INTEGER NOT NULL PRIMARY KEY,
		snapshot BLOB NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// DB returns the underlying sqlite handle so other tables (the server
// package's credentials store) can live in the same database file.
func (c *Cache) DB() *sql.DB {
	return c.db
}

// Key returns the FNV-1a hash of source used as the cache's lookup key.
func Key(source string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(source))
	return h.Sum64()
}

// Put stores the diagnostics produced by parsing source, replacing any
// existing entry for the same text.
func (c *Cache) Put(ctx context.Context, source string, errs []diag.Error) error {
	data, err := snapshot.Encode(errs)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO parse_results (source_hash, snapshot) VALUES (?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET snapshot=excluded.snapshot`,
		Key(source), data,
	)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Get returns the cached diagnostics for source, or ErrNotFound if no entry
// exists. Callers must still verify the hash did not collide with different
// source text before trusting a hit for anything beyond advisory caching.
func (c *Cache) Get(ctx context.Context, source string) ([]diag.Error, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT snapshot FROM parse_results WHERE source_hash = ?`, Key(source))

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapDBError(err)
	}

	errs, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return errs, nil
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cache: %w", err)
}
