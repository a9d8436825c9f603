package shared

import (
	"fmt"
)

// IdBuilder constructs the canonical URIs of actors local to this server.
type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) SharedInbox() string {
	return fmt.Sprintf("https://%s/inbox", idb.Host)
}

func (idb *IdBuilder) ActorUri(handle string) string {
	return fmt.Sprintf("https://%s/u/%s", idb.Host, handle)
}

func (idb *IdBuilder) ActorKeyId(handle string) string {
	return fmt.Sprintf("https://%s/u/%s#main-key", idb.Host, handle)
}

func (idb *IdBuilder) ActorInbox(handle string) string {
	return fmt.Sprintf("https://%s/u/%s/inbox", idb.Host, handle)
}

func (idb *IdBuilder) ActivityUrl(id string) string {
	return fmt.Sprintf("https://%s/activity/%s", idb.Host, id)
}
