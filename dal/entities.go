package dal

import (
	"time"
)

// Lifecycle of identities and blogs. One enumerated column instead of
// scattered disabled/deleted flags.
type LifecycleStatus int

const (
	LifecycleActive   LifecycleStatus = 0
	LifecycleDisabled LifecycleStatus = 1
	LifecycleDeleted  LifecycleStatus = 2
)

// State of a directed follow edge. At most one edge exists per ordered
// (source, target) pair; FollowBlocked is terminal.
type FollowStatus int

const (
	FollowNone     FollowStatus = 0
	FollowPending  FollowStatus = 1
	FollowApproved FollowStatus = 2
	FollowBlocked  FollowStatus = 3
)

// Account is the authority boundary: blocks, mutes and filters attach here
// and apply across all of the account's identities and blogs.
type Account struct {
	Id                 int64
	CreatedAt          time.Time
	Email              string
	PasswordHash       string // opaque; hashing happens outside this core
	PrimaryIdentityId  int64  // 0: not set
	ApprovalForFollows bool
	Banned             bool
}

// Actor is a federation-addressable entity. Uri is the federation-wide
// primary key; UriHash is its murmur3 hash, used as the lookup key.
type Actor struct {
	Id          int64
	CreatedAt   time.Time
	Uri         string
	UriHash     int64
	Handle      string
	Host        string
	IsLocal     bool
	Inbox       string
	SharedInbox string
	PubKey      string
}

type Identity struct {
	Id            int64
	AccountId     int64
	ActorId       int64
	UserName      string
	DisplayName   string
	Status        LifecycleStatus
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

type Blog struct {
	Id            int64
	AccountId     int64
	ActorId       int64
	Title         string
	Status        LifecycleStatus
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

type FollowEdge struct {
	SourceActorId     int64
	TargetActorId     int64
	Status            FollowStatus
	RequestActivityId string // id of the Follow activity; needed for Accept replies
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
}

type BlockEdge struct {
	AccountId     int64
	TargetActorId int64
	CreatedAt     time.Time
}

type MuteEdge struct {
	AccountId     int64
	TargetActorId int64
	CreatedAt     time.Time
}

type FilterRule struct {
	Id           int64
	AccountId    int64
	Query        string
	Hide         bool
	Minimize     bool
	ScopeActorId int64 // 0: applies to all actors
	CreatedAt    time.Time
	DurationSec  int64
	Forever      bool
}

// Expired says whether the rule is spent at the given instant. Non-forever
// rules always carry a duration.
func (fr *FilterRule) Expired(now time.Time) bool {
	if fr.Forever {
		return false
	}
	return now.After(fr.CreatedAt.Add(time.Duration(fr.DurationSec) * time.Second))
}
