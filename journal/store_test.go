package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/config"
)

func TestOpenStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	s, err := OpenStore(config.StoreConfig{Type: "csv", Path: filepath.Join(dir, "t.csv")})
	require.NoError(t, err)
	assert.IsType(t, &CSVStore{}, s)
	assert.NoError(t, s.Close())

	s, err = OpenStore(config.StoreConfig{Type: "sqlite", Path: filepath.Join(dir, "t.sqlite")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	assert.NoError(t, s.Close())

	_, err = OpenStore(config.StoreConfig{Type: "parquet", Path: "x"})
	assert.Error(t, err)
}
