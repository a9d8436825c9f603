package dal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterRuleExpired(t *testing.T) {
	now := time.Now().UTC()

	forever := FilterRule{Query: "spoilers", Forever: true}
	assert.False(t, forever.Expired(now))
	assert.False(t, forever.Expired(now.Add(24*365*time.Hour)))

	timed := FilterRule{Query: "politics", CreatedAt: now, DurationSec: 60}
	assert.False(t, timed.Expired(now))
	assert.False(t, timed.Expired(now.Add(59*time.Second)))
	assert.True(t, timed.Expired(now.Add(61*time.Second)))
}

func TestUriHashStable(t *testing.T) {
	uri := "https://stardust.community/users/pixie"
	assert.Equal(t, UriHash(uri), UriHash(uri))
	assert.NotEqual(t, UriHash(uri), UriHash(uri+"x"))
}
