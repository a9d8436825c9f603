package dto

type WebfingerResp struct {
	Subject string          `json:"subject"`
	Aliases []string        `json:"aliases,omitempty"`
	Links   []WebfingerLink `json:"links"`
}

type WebfingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

// DiscoveryRecord is the digested result of one successful webfinger lookup.
// Ephemeral; callers decide what to cache or persist.
type DiscoveryRecord struct {
	Subject  string
	ActorUri string
	Links    map[string]string
}

// ResolvedIdentifier is the output of identifier normalization.
type ResolvedIdentifier struct {
	ResourceId       string
	DiscoveryBaseUrl string
}
