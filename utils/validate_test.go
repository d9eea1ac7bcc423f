package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Abcdef12"))
	assert.True(t, IsStrongPassword("Sup3rSecret"))

	assert.False(t, IsStrongPassword("Ab1"))        // too short
	assert.False(t, IsStrongPassword("abcdefg1"))   // no upper
	assert.False(t, IsStrongPassword("ABCDEFG1"))   // no lower
	assert.False(t, IsStrongPassword("Abcdefgh"))   // no digit
	assert.False(t, IsStrongPassword(""))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+212612345678"))
	assert.True(t, IsPhone("0612345678"))

	assert.False(t, IsPhone(""))
	assert.False(t, IsPhone("+1234"))           // too short
	assert.False(t, IsPhone("06 12 34 56 78")) // spaces
	assert.False(t, IsPhone("call-me"))
	assert.False(t, IsPhone("+1234567890123456")) // too long
}
