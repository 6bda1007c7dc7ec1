package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestParseDateTime_NaiveUsesBusinessZone(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDateTime("2026-02-12T10:30", loc)
	require.NoError(t, err)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseDateTime_OffsetIsKept(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDateTime("2026-02-12T09:30:00Z", loc)
	require.NoError(t, err)

	// 09:30 UTC is 10:30 in Paris during winter time.
	assert.Equal(t, "10:30", got.Format("15:04"))
	assert.True(t, got.Equal(time.Date(2026, 2, 12, 9, 30, 0, 0, time.UTC)))
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("tomorrow", Location(DefaultTimezone))
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestDateKey(t *testing.T) {
	loc := Location(DefaultTimezone)
	lateUTC := time.Date(2026, 2, 11, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-02-12", DateKey(lateUTC, loc))
}
