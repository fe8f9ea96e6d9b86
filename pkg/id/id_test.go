package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	a := New()
	b := New()

	assert.Len(t, a, 26)
	assert.Less(t, a, b)
}

func TestNewAtRoundTripsTime(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)

	got, err := Time(NewAt(at))
	require.NoError(t, err)
	assert.Equal(t, at, got)
}

func TestTimeRejectsGarbage(t *testing.T) {
	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}
