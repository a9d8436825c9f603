package dto

import "time"

type ResolveRequest struct {
	Identifier string `json:"identifier"`
}

type ResolveResponse struct {
	ResourceId       string            `json:"resource_id"`
	DiscoveryBaseUrl string            `json:"discovery_base_url"`
	Subject          string            `json:"subject,omitempty"`
	ActorUri         string            `json:"actor_uri,omitempty"`
	Links            map[string]string `json:"links,omitempty"`
}

type FollowRequest struct {
	SourceActorId int64 `json:"source_actor_id"`
	TargetActorId int64 `json:"target_actor_id"`
}

type FollowResponse struct {
	Status string `json:"status"`
}

type BlockRequest struct {
	AccountId     int64 `json:"account_id"`
	TargetActorId int64 `json:"target_actor_id"`
}

type MuteRequest struct {
	AccountId     int64 `json:"account_id"`
	TargetActorId int64 `json:"target_actor_id"`
}

type FilterRequest struct {
	AccountId    int64  `json:"account_id"`
	Query        string `json:"query"`
	Hide         bool   `json:"hide"`
	Minimize     bool   `json:"minimize"`
	ScopeActorId *int64 `json:"scope_actor_id,omitempty"`
	DurationSec  *int64 `json:"duration_sec,omitempty"`
	Forever      bool   `json:"forever"`
}

type FilterResponse struct {
	Id int64 `json:"id"`
}

// ContentSummary is what the visibility evaluator sees of a piece of
// content: its text (possibly HTML) and its tags.
type ContentSummary struct {
	AuthorActorId int64     `json:"author_actor_id"`
	Text          string    `json:"text"`
	Tags          []string  `json:"tags"`
	PublishedAt   time.Time `json:"published_at"`
}

type VisibilityRequest struct {
	ViewerAccountId int64          `json:"viewer_account_id"`
	Content         ContentSummary `json:"content"`
}

type VisibilityResponse struct {
	Decision string `json:"decision"` // show | minimize | hide
	Reason   string `json:"reason,omitempty"`
}
