package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-F]{8}$`)
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		code, err := GenerateConfirmationCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
		seen[code] = true
	}

	assert.Greater(t, len(seen), 190)
}

func TestTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCancelled))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))

	err := CanCancel(StatusCancelled)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel cancelled booking", err.Error())

	err = CanCancel(StatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed")
}

func TestSourceValid(t *testing.T) {
	assert.True(t, SourceOnline.Valid())
	assert.True(t, SourceVoucher.Valid())
	assert.True(t, SourceManual.Valid())
	assert.False(t, Source("walk-in").Valid())
}
