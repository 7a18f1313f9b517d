package wardrobecat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

func TestParseFillsDefaults(t *testing.T) {
	data := []byte(`[
		{"name": "blue jeans", "category": "bottomwear", "tags": ["casual", "blue"]},
		{"name": "mystery scarf"},
		{"name": "", "category": "topwear"}
	]`)

	items, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "blue jeans", items[0].Name)
	require.Equal(t, wardrobe.CategoryBottomwear, items[0].Category)

	require.Equal(t, "mystery scarf", items[1].Name)
	require.Equal(t, wardrobe.CategoryUnknown, items[1].Category)
	require.Equal(t, wardrobe.AgeGroupAll, items[1].AgeGroup)
	require.Equal(t, wardrobe.GenderUnisex, items[1].Gender)
	require.NotNil(t, items[1].Tags)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"not": "a list"}`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clothes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "white shirt", "category": "topwear", "tags": ["formal", "white"]}]`), 0o600))

	items, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)

	repo := NewMemoryRepository(items)
	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, items, listed)
}
