package dto

// ActorInfo is the subset of a remote ActivityPub actor document that the
// server needs to address and verify the actor.
type ActorInfo struct {
	Context           any            `json:"@context"`
	Id                string         `json:"id"`
	Type              string         `json:"type"`
	PreferredUserName string         `json:"preferredUsername"`
	Name              string         `json:"name"`
	Inbox             string         `json:"inbox"`
	Outbox            string         `json:"outbox"`
	Followers         string         `json:"followers"`
	Following         string         `json:"following"`
	Endpoints         ActorEndpoints `json:"endpoints"`
	PublicKey         PublicKey      `json:"publicKey"`
}

type ActorEndpoints struct {
	SharedInbox string `json:"sharedInbox"`
}

type PublicKey struct {
	Id           string `json:"id"`
	Owner        string `json:"owner"`
	PublicKeyPem string `json:"publicKeyPem"`
}

// ActivityOut is an outbound activity; Object is either a string or a
// nested ActivityOut.
type ActivityOut struct {
	Context string `json:"@context"`
	Id      string `json:"id"`
	Type    string `json:"type"`
	Actor   string `json:"actor"`
	Object  any    `json:"object"`
}
