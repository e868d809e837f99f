package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenExpired(t *testing.T) {
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Minute))))
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Hour))))

	// opaque tokens are left for the server to judge
	assert.False(t, tokenExpired("not-a-jwt"))
}
