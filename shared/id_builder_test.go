package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdBuilder(t *testing.T) {
	idb := IdBuilder{Host: "lamia.social"}
	assert.Equal(t, "https://lamia.social", idb.SiteUrl())
	assert.Equal(t, "https://lamia.social/inbox", idb.SharedInbox())
	assert.Equal(t, "https://lamia.social/u/mira", idb.ActorUri("mira"))
	assert.Equal(t, "https://lamia.social/u/mira#main-key", idb.ActorKeyId("mira"))
	assert.Equal(t, "https://lamia.social/u/mira/inbox", idb.ActorInbox("mira"))
	assert.Equal(t, "https://lamia.social/activity/some-id", idb.ActivityUrl("some-id"))
}

func TestGetHostName(t *testing.T) {
	host, err := GetHostName("https://stardust.community/users/pixie")
	assert.NoError(t, err)
	assert.Equal(t, "stardust.community", host)
}

func TestMakeFullMoniker(t *testing.T) {
	assert.Equal(t, "@pixie@stardust.community", MakeFullMoniker("stardust.community", "pixie"))
}
