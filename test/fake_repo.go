package test

import (
	"fmt"
	"sync"
	"time"

	"lamia/dal"
)

type edgeKey struct {
	a, b int64
}

// fakeRepo is an in-memory stand-in for the sqlite repo with the same
// conditional-write semantics, so the relationship state machine can be
// exercised without a database, including under concurrency.
type fakeRepo struct {
	mu             sync.Mutex
	nextId         int64
	accounts       map[int64]*dal.Account
	actors         map[int64]*dal.Actor
	actorToAccount map[int64]int64
	follows        map[edgeKey]*dal.FollowEdge
	blocks         map[edgeKey]*dal.BlockEdge
	mutes          map[edgeKey]*dal.MuteEdge
	filters        map[int64]*dal.FilterRule
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextId:         1,
		accounts:       make(map[int64]*dal.Account),
		actors:         make(map[int64]*dal.Actor),
		actorToAccount: make(map[int64]int64),
		follows:        make(map[edgeKey]*dal.FollowEdge),
		blocks:         make(map[edgeKey]*dal.BlockEdge),
		mutes:          make(map[edgeKey]*dal.MuteEdge),
		filters:        make(map[int64]*dal.FilterRule),
	}
}

var _ dal.IRepo = &fakeRepo{}

// addLocalActor seeds an account-owned local actor and returns its id.
func (fr *fakeRepo) addLocalActor(accountId int64, handle string) int64 {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	fr.actors[id] = &dal.Actor{
		Id:      id,
		Uri:     fmt.Sprintf("https://test.lamia.social/u/%s", handle),
		Handle:  handle,
		Host:    "test.lamia.social",
		IsLocal: true,
		Inbox:   fmt.Sprintf("https://test.lamia.social/u/%s/inbox", handle),
	}
	fr.actorToAccount[id] = accountId
	return id
}

// addRemoteActor seeds a standalone remote actor and returns its id.
func (fr *fakeRepo) addRemoteActor(handle, host string) int64 {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	fr.actors[id] = &dal.Actor{
		Id:      id,
		Uri:     fmt.Sprintf("https://%s/users/%s", host, handle),
		Handle:  handle,
		Host:    host,
		IsLocal: false,
		Inbox:   fmt.Sprintf("https://%s/users/%s/inbox", host, handle),
	}
	return id
}

func (fr *fakeRepo) InitUpdateDb() {}

func (fr *fakeRepo) AddAccount(acct *dal.Account) (int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	stored := *acct
	stored.Id = id
	fr.accounts[id] = &stored
	return id, nil
}

func (fr *fakeRepo) GetAccount(id int64) (*dal.Account, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	acct, ok := fr.accounts[id]
	if !ok {
		return nil, nil
	}
	res := *acct
	return &res, nil
}

func (fr *fakeRepo) AddActorIfNotExist(actor *dal.Actor, privKey string) (bool, int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	for _, existing := range fr.actors {
		if existing.Uri == actor.Uri {
			return false, existing.Id, nil
		}
	}
	id := fr.nextId
	fr.nextId++
	stored := *actor
	stored.Id = id
	fr.actors[id] = &stored
	return true, id, nil
}

func (fr *fakeRepo) GetActorById(id int64) (*dal.Actor, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	actor, ok := fr.actors[id]
	if !ok {
		return nil, nil
	}
	res := *actor
	return &res, nil
}

func (fr *fakeRepo) GetActorByUri(uri string) (*dal.Actor, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	for _, actor := range fr.actors {
		if actor.Uri == uri {
			res := *actor
			return &res, nil
		}
	}
	return nil, nil
}

func (fr *fakeRepo) GetLocalActorByHandle(handle string) (*dal.Actor, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	for _, actor := range fr.actors {
		if actor.IsLocal && actor.Handle == handle {
			res := *actor
			return &res, nil
		}
	}
	return nil, nil
}

func (fr *fakeRepo) GetPrivKey(actorId int64) (string, error) {
	return "", nil
}

func (fr *fakeRepo) AddIdentity(identity *dal.Identity) (int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	fr.actorToAccount[identity.ActorId] = identity.AccountId
	return id, nil
}

func (fr *fakeRepo) AddBlog(blog *dal.Blog) (int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	fr.actorToAccount[blog.ActorId] = blog.AccountId
	return id, nil
}

func (fr *fakeRepo) GetAccountIdForActor(actorId int64) (int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.actorToAccount[actorId], nil
}

func (fr *fakeRepo) GetActorIdsForAccount(accountId int64) ([]int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	var res []int64
	for actorId, acctId := range fr.actorToAccount {
		if acctId == accountId {
			res = append(res, actorId)
		}
	}
	return res, nil
}

func (fr *fakeRepo) GetFollowEdge(sourceActorId, targetActorId int64) (*dal.FollowEdge, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	edge, ok := fr.follows[edgeKey{sourceActorId, targetActorId}]
	if !ok {
		return nil, nil
	}
	res := *edge
	return &res, nil
}

func (fr *fakeRepo) UpsertFollowEdgeIfStatus(edge *dal.FollowEdge, expected dal.FollowStatus) (bool, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	key := edgeKey{edge.SourceActorId, edge.TargetActorId}
	current := dal.FollowNone
	if existing, ok := fr.follows[key]; ok {
		current = existing.Status
	}
	if current != expected {
		return false, nil
	}
	stored := *edge
	fr.follows[key] = &stored
	return true, nil
}

func (fr *fakeRepo) DeleteFollowEdgeIfStatus(sourceActorId, targetActorId int64, expected dal.FollowStatus) (bool, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	key := edgeKey{sourceActorId, targetActorId}
	existing, ok := fr.follows[key]
	if !ok || existing.Status != expected {
		return false, nil
	}
	delete(fr.follows, key)
	return true, nil
}

func (fr *fakeRepo) CountFollowEdges(status dal.FollowStatus) (int, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	count := 0
	for _, edge := range fr.follows {
		if edge.Status == status {
			count++
		}
	}
	return count, nil
}

func (fr *fakeRepo) ApplyAccountBlock(accountId int64, accountActorIds []int64, targetActorId int64,
	when time.Time) (bool, error) {

	fr.mu.Lock()
	defer fr.mu.Unlock()
	key := edgeKey{accountId, targetActorId}
	isNew := false
	if _, ok := fr.blocks[key]; !ok {
		fr.blocks[key] = &dal.BlockEdge{AccountId: accountId, TargetActorId: targetActorId, CreatedAt: when}
		isNew = true
	}
	for _, actorId := range accountActorIds {
		for _, ek := range []edgeKey{{actorId, targetActorId}, {targetActorId, actorId}} {
			if edge, ok := fr.follows[ek]; ok {
				edge.Status = dal.FollowBlocked
				edge.LastUpdatedAt = when
			}
		}
	}
	return isNew, nil
}

func (fr *fakeRepo) GetBlockEdge(accountId, targetActorId int64) (*dal.BlockEdge, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	block, ok := fr.blocks[edgeKey{accountId, targetActorId}]
	if !ok {
		return nil, nil
	}
	res := *block
	return &res, nil
}

func (fr *fakeRepo) AddMuteEdgeIfNew(accountId, targetActorId int64, when time.Time) (bool, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	key := edgeKey{accountId, targetActorId}
	if _, ok := fr.mutes[key]; ok {
		return false, nil
	}
	fr.mutes[key] = &dal.MuteEdge{AccountId: accountId, TargetActorId: targetActorId, CreatedAt: when}
	return true, nil
}

func (fr *fakeRepo) GetMuteEdge(accountId, targetActorId int64) (*dal.MuteEdge, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	mute, ok := fr.mutes[edgeKey{accountId, targetActorId}]
	if !ok {
		return nil, nil
	}
	res := *mute
	return &res, nil
}

func (fr *fakeRepo) DeleteMuteEdge(accountId, targetActorId int64) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	delete(fr.mutes, edgeKey{accountId, targetActorId})
	return nil
}

func (fr *fakeRepo) AddFilterRule(rule *dal.FilterRule) (int64, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	id := fr.nextId
	fr.nextId++
	stored := *rule
	stored.Id = id
	fr.filters[id] = &stored
	return id, nil
}

func (fr *fakeRepo) GetFilterRules(accountId int64) ([]*dal.FilterRule, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	var res []*dal.FilterRule
	for _, rule := range fr.filters {
		if rule.AccountId == accountId {
			cp := *rule
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (fr *fakeRepo) DeleteFilterRule(accountId, ruleId int64) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if rule, ok := fr.filters[ruleId]; ok && rule.AccountId == accountId {
		delete(fr.filters, ruleId)
	}
	return nil
}

func (fr *fakeRepo) DeleteExpiredFilterRules(now time.Time) (int, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	count := 0
	for id, rule := range fr.filters {
		if rule.Expired(now) {
			delete(fr.filters, id)
			count++
		}
	}
	return count, nil
}
