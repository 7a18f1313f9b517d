package imagestore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "shirts/white.png", []byte("png-bytes"), "image/png"))

	rc, err := store.Get(ctx, "shirts/white.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Get(ctx, "../../etc/passwd")
	require.Error(t, err)

	_, err = store.Get(ctx, "/etc/passwd")
	require.Error(t, err)

	_, err = store.Get(ctx, "")
	require.Error(t, err)
}
