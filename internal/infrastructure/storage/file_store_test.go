package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	doc := json.RawMessage(`[{"id":"m1","fullName":"Ali Veli"}]`)
	require.NoError(t, store.Write(ctx, KeyMembers, doc))

	got, found, err := store.Read(ctx, KeyMembers)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, string(doc), string(got))
}

func TestFileStore_MissingDocumentIsNotAnError(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, found, err := store.Read(context.Background(), KeyExpenses)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestFileStore_WriteReplacesWholeDocument(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyProducts, json.RawMessage(`[{"id":"p1"},{"id":"p2"}]`)))
	require.NoError(t, store.Write(ctx, KeyProducts, json.RawMessage(`[{"id":"p3"}]`)))

	got, found, err := store.Read(ctx, KeyProducts)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"p3"}]`, string(got))
}

func TestFileStore_PrettyPrintsOnDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), KeyCoupons, json.RawMessage(`[{"id":"c1","code":"PROMO"}]`)))

	raw, err := os.ReadFile(filepath.Join(dir, KeyCoupons+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ", "documents are indented for hand inspection")
}

func TestFileStore_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "../escape", json.RawMessage(`[]`)))

	_, err = os.Stat(filepath.Join(dir, "escape.json"))
	assert.NoError(t, err, "path separators are stripped from keys")
}
