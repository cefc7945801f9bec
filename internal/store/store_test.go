package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyWorkers)
	require.NoError(t, err)
	assert.False(t, ok, "missing key reports absent")

	require.NoError(t, s.Put(ctx, KeyWorkers, []byte(`[{"id":1}]`)))

	v, ok, err := s.Get(ctx, KeyWorkers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(v))
}

func TestSQLiteStore_PutReplaces(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, KeyProjects, []byte(`[]`)))
	require.NoError(t, s.Put(ctx, KeyProjects, []byte(`[{"id":2}]`)))

	v, ok, err := s.Get(ctx, KeyProjects)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":2}]`, string(v))
}

func TestSQLiteStore_FileBacked(t *testing.T) {
	path := t.TempDir() + "/nested/dir/sitedesk.db"

	s, err := OpenSQLite(path)
	require.NoError(t, err, "parent directories are created")
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, KeyMaterials, []byte(`[]`)))
	require.NoError(t, s.Close())

	// Reopen and read back.
	s, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	v, ok, err := s.Get(ctx, KeyMaterials)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(v))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyReadNotifications)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, KeyReadNotifications, []byte(`[3001]`)))
	v, ok, err := s.Get(ctx, KeyReadNotifications)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[3001]`, string(v))
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte(`[1]`)
	require.NoError(t, s.Put(ctx, "k", in))
	in[1] = '9'

	v, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(v))

	v[1] = '8'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}
