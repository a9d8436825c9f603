package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lamia/dal"
	"lamia/dto"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_directory.go -package mocks lamia/logic IActorDirectory

// IActorDirectory turns identifiers into actors. Local identifiers hit the
// repo directly; remote ones go through webfinger discovery (TTL-cached) and
// an actor document fetch, after which the actor is persisted.
type IActorDirectory interface {
	ResolveIdentifier(identifier string) (dto.ResolvedIdentifier, error)
	Discover(ctx context.Context, identifier string) (*dto.DiscoveryRecord, error)
	GetOrFetchActor(ctx context.Context, identifier string) (*dal.Actor, error)
	CreateAccount(email string, approvalForFollows bool) (int64, error)
	CreateLocalIdentity(accountId int64, userName string) (*dal.Actor, error)
	CreateLocalBlog(accountId int64, handle, title string) (*dal.Actor, error)
}

type actorDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	resolver IResolver
	fetcher  IActorFetcher
	blocked  IBlockedHosts
	keyStore IKeyStore
	idb      shared.IdBuilder
	cache    *discoveryCache
}

func NewActorDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IResolver,
	fetcher IActorFetcher,
	blocked IBlockedHosts,
	keyStore IKeyStore,
) IActorDirectory {
	return &actorDirectory{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		resolver: resolver,
		fetcher:  fetcher,
		blocked:  blocked,
		keyStore: keyStore,
		idb:      shared.IdBuilder{Host: cfg.Host},
		cache:    newDiscoveryCache(cfg),
	}
}

func (dir *actorDirectory) ResolveIdentifier(identifier string) (dto.ResolvedIdentifier, error) {
	return Normalize(identifier)
}

func (dir *actorDirectory) Discover(ctx context.Context, identifier string) (*dto.DiscoveryRecord, error) {

	resolved, err := Normalize(identifier)
	if err != nil {
		return nil, err
	}

	if record := dir.cache.get(resolved.ResourceId); record != nil {
		return record, nil
	}

	host := strings.TrimPrefix(resolved.DiscoveryBaseUrl, "https://")
	isBlocked, err := dir.blocked.IsBlocked(host)
	if err != nil {
		dir.logger.Warnf("Failed to read blocked hosts list: %v", err)
	} else if isBlocked {
		return nil, fmt.Errorf("%w: host '%s' is blocked by this server", ErrDiscoveryNotFound, host)
	}

	record, err := dir.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	dir.cache.put(resolved.ResourceId, record)
	return record, nil
}

// localHandle returns the bare handle when the identifier names an actor on
// this server, or "" when it is remote.
func (dir *actorDirectory) localHandle(identifier string, resolved dto.ResolvedIdentifier) string {
	host := strings.TrimPrefix(resolved.DiscoveryBaseUrl, "https://")
	if !strings.EqualFold(host, dir.cfg.Host) {
		// A bare word with no host of its own parses as its own host; treat
		// it as a local handle.
		if !strings.ContainsAny(identifier, "@/.") {
			return identifier
		}
		return ""
	}
	resource := resolved.ResourceId
	resource = strings.TrimPrefix(resource, "acct:")
	// Path-style id on our own host: host/@handle
	if ix := strings.LastIndex(resource, "/@"); ix >= 0 {
		return resource[ix+2:]
	}
	if ix := strings.IndexByte(resource, '@'); ix >= 0 {
		return resource[:ix]
	}
	// URL-style local id: last path segment
	if ix := strings.LastIndexByte(resource, '/'); ix >= 0 {
		return strings.TrimPrefix(resource[ix+1:], "@")
	}
	return resource
}

func (dir *actorDirectory) GetOrFetchActor(ctx context.Context, identifier string) (*dal.Actor, error) {

	resolved, err := Normalize(identifier)
	if err != nil {
		return nil, err
	}

	if handle := dir.localHandle(identifier, resolved); handle != "" {
		actor, err := dir.repo.GetLocalActorByHandle(handle)
		if err != nil {
			return nil, err
		}
		if actor == nil {
			return nil, fmt.Errorf("%w: no local actor '%s'", ErrDiscoveryNotFound, handle)
		}
		return actor, nil
	}

	record, err := dir.Discover(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// Known already?
	actor, err := dir.repo.GetActorByUri(record.ActorUri)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		return actor, nil
	}

	info, err := dir.fetcher.Fetch(ctx, record.ActorUri)
	if err != nil {
		return nil, err
	}

	host, err := shared.GetHostName(info.Id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscoveryMalformedResponse, err)
	}

	newActor := dal.Actor{
		CreatedAt:   time.Now().UTC(),
		Uri:         info.Id,
		Handle:      info.PreferredUserName,
		Host:        host,
		IsLocal:     false,
		Inbox:       info.Inbox,
		SharedInbox: info.Endpoints.SharedInbox,
		PubKey:      info.PublicKey.PublicKeyPem,
	}
	isNew, id, err := dir.repo.AddActorIfNotExist(&newActor, "")
	if err != nil {
		return nil, err
	}
	newActor.Id = id
	if isNew {
		dir.logger.Infof("Registered remote actor %s (%s)", info.Id,
			shared.MakeFullMoniker(host, info.PreferredUserName))
	}
	return &newActor, nil
}

func (dir *actorDirectory) CreateAccount(email string, approvalForFollows bool) (int64, error) {
	acct := dal.Account{
		CreatedAt:          time.Now().UTC(),
		Email:              email,
		ApprovalForFollows: approvalForFollows,
	}
	return dir.repo.AddAccount(&acct)
}

func (dir *actorDirectory) CreateLocalIdentity(accountId int64, userName string) (*dal.Actor, error) {

	actor, err := dir.createLocalActor(userName)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	identity := dal.Identity{
		AccountId:     accountId,
		ActorId:       actor.Id,
		UserName:      userName,
		DisplayName:   userName,
		Status:        dal.LifecycleActive,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if _, err = dir.repo.AddIdentity(&identity); err != nil {
		return nil, err
	}
	return actor, nil
}

func (dir *actorDirectory) CreateLocalBlog(accountId int64, handle, title string) (*dal.Actor, error) {

	actor, err := dir.createLocalActor(handle)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	blog := dal.Blog{
		AccountId:     accountId,
		ActorId:       actor.Id,
		Title:         title,
		Status:        dal.LifecycleActive,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if _, err = dir.repo.AddBlog(&blog); err != nil {
		return nil, err
	}
	return actor, nil
}

func (dir *actorDirectory) createLocalActor(handle string) (*dal.Actor, error) {

	pubKey, privKey, err := dir.keyStore.MakeKeyPair()
	if err != nil {
		return nil, err
	}
	actor := dal.Actor{
		CreatedAt:   time.Now().UTC(),
		Uri:         dir.idb.ActorUri(handle),
		Handle:      handle,
		Host:        dir.cfg.Host,
		IsLocal:     true,
		Inbox:       dir.idb.ActorInbox(handle),
		SharedInbox: dir.idb.SharedInbox(),
		PubKey:      pubKey,
	}
	isNew, id, err := dir.repo.AddActorIfNotExist(&actor, privKey)
	if err != nil {
		return nil, err
	}
	if !isNew {
		return nil, fmt.Errorf("local actor '%s' already exists", handle)
	}
	actor.Id = id
	return &actor, nil
}
