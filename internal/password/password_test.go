package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	assert.NoError(t, Compare(hashed, "s3cret!"))
	assert.ErrorIs(t, Compare(hashed, "wrong"), ErrComparisonFailed)
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.ErrorIs(t, Compare("", "x"), ErrInvalidPassword)
}
