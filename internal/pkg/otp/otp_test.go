//go:build unit

package otp_test

import (
	"strconv"
	"testing"

	"smartwash/internal/pkg/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := otp.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.True(t, otp.IsWellFormed(code))

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, otp.IsWellFormed("100000"))
	assert.True(t, otp.IsWellFormed("999999"))
	assert.False(t, otp.IsWellFormed("99999"))
	assert.False(t, otp.IsWellFormed("1000000"))
	assert.False(t, otp.IsWellFormed("12a456"))
	assert.False(t, otp.IsWellFormed(""))
}
