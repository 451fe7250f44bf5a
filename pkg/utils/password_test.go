package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestGenerateObjectName(t *testing.T) {
	name := GenerateObjectName("kitchen photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Greater(t, len(name), len(".jpg"))

	// No extension stays extension-free
	bare := GenerateObjectName("README")
	assert.NotContains(t, bare, ".")

	// Names are unique per call
	assert.NotEqual(t, GenerateObjectName("a.png"), GenerateObjectName("a.png"))
}

func TestTemporaryPassword(t *testing.T) {
	pw := TemporaryPassword()
	assert.Len(t, pw, 8)
	assert.NotEqual(t, pw, TemporaryPassword())
}
