package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/diag"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	file := filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(file)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func Test_Cache_missGivesErrNotFound(t *testing.T) {
	assert := assert.New(t)
	c := openTestCache(t)

	_, err := c.Get(context.Background(), "{ hero }")
	assert.ErrorIs(err, ErrNotFound)
}

func Test_Cache_putThenGetRoundTrips(t *testing.T) {
	assert := assert.New(t)
	c := openTestCache(t)

	source := "{ hero { name } }"
	errs := []diag.Error{diag.NewSyntactic("unexpected token", 5, 2)}

	assert.NoError(c.Put(context.Background(), source, errs))

	got, err := c.Get(context.Background(), source)
	assert.NoError(err)
	assert.Equal(errs, got)
}

func Test_Cache_putOverwritesExistingEntry(t *testing.T) {
	assert := assert.New(t)
	c := openTestCache(t)

	source := "{ hero }"
	assert.NoError(c.Put(context.Background(), source, []diag.Error{diag.NewSyntactic("first", 0, 1)}))
	assert.NoError(c.Put(context.Background(), source, []diag.Error{diag.NewSyntactic("second", 0, 1)}))

	got, err := c.Get(context.Background(), source)
	assert.NoError(err)
	assert.Len(got, 1)
	assert.Equal("second", got[0].Message)
}

func Test_Cache_emptyDiagnosticsRoundTrip(t *testing.T) {
	assert := assert.New(t)
	c := openTestCache(t)

	source := "{ hero }"
	assert.NoError(c.Put(context.Background(), source, nil))

	got, err := c.Get(context.Background(), source)
	assert.NoError(err)
	assert.Empty(got)
}

func Test_Key_isStableAndDistinguishesText(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Key("{ hero }"), Key("{ hero }"))
	assert.NotEqual(Key("{ hero }"), Key("{ villain }"))
}
