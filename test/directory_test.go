package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lamia/dto"
	"lamia/logic"
	"lamia/shared"
	"lamia/test/mocks"
)

const localHost = "test.lamia.social"

type directoryHarness struct {
	cfg          *shared.Config
	repo         *fakeRepo
	mockLogger   *mocks.MockILogger
	mockResolver *mocks.MockIResolver
	mockFetcher  *mocks.MockIActorFetcher
	mockBlocked  *mocks.MockIBlockedHosts
	mockKeyStore *mocks.MockIKeyStore
}

func setupDirectoryTest(t *testing.T) (*gomock.Controller, *directoryHarness, logic.IActorDirectory) {

	ctrl := gomock.NewController(t)

	h := &directoryHarness{
		cfg: &shared.Config{
			Host:                  localHost,
			DiscoveryCacheMinutes: 10,
		},
		repo:         newFakeRepo(),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockResolver: mocks.NewMockIResolver(ctrl),
		mockFetcher:  mocks.NewMockIActorFetcher(ctrl),
		mockBlocked:  mocks.NewMockIBlockedHosts(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
	}

	stubLogger(h.mockLogger)

	dir := logic.NewActorDirectory(h.cfg, h.mockLogger, h.repo, h.mockResolver,
		h.mockFetcher, h.mockBlocked, h.mockKeyStore)

	return ctrl, h, dir
}

func callerRecord() *dto.DiscoveryRecord {
	return &dto.DiscoveryRecord{
		Subject:  fmt.Sprintf("acct:%s@%s", callerName, callerHost),
		ActorUri: callerActorUri,
		Links:    map[string]string{"self": callerActorUri},
	}
}

func Test_Discover_CachesSecondLookup(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	identifier := fmt.Sprintf("%s@%s", callerName, callerHost)
	h.mockBlocked.EXPECT().IsBlocked(callerHost).Return(false, nil).Times(1)
	h.mockResolver.EXPECT().Resolve(gomock.Any(), identifier).Return(callerRecord(), nil).Times(1)

	first, err := dir.Discover(context.Background(), identifier)
	assert.NoError(t, err)

	second, err := dir.Discover(context.Background(), identifier)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, callerActorUri, second.ActorUri)
}

func Test_Discover_BlockedHost(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	identifier := fmt.Sprintf("%s@%s", callerName, callerHost)
	h.mockBlocked.EXPECT().IsBlocked(callerHost).Return(true, nil)

	_, err := dir.Discover(context.Background(), identifier)

	assert.ErrorIs(t, err, logic.ErrDiscoveryNotFound)
}

func Test_GetOrFetchActor_LocalHandle(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	accountId, err := dir.CreateAccount("mira@example.com", false)
	assert.NoError(t, err)
	actorId := h.repo.addLocalActor(accountId, "mira")

	actor, err := dir.GetOrFetchActor(context.Background(), fmt.Sprintf("mira@%s", localHost))
	assert.NoError(t, err)
	assert.Equal(t, actorId, actor.Id)
	assert.True(t, actor.IsLocal)

	// Bare handle resolves locally too
	actor, err = dir.GetOrFetchActor(context.Background(), "mira")
	assert.NoError(t, err)
	assert.Equal(t, actorId, actor.Id)
}

func Test_GetOrFetchActor_LocalPathStyle(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	accountId, err := dir.CreateAccount("mira@example.com", false)
	assert.NoError(t, err)
	actorId := h.repo.addLocalActor(accountId, "mira")

	forms := []string{
		fmt.Sprintf("%s/@mira", localHost),
		fmt.Sprintf("acct:%s/@mira", localHost),
		fmt.Sprintf("https://%s/@mira", localHost),
	}
	for _, form := range forms {
		actor, err := dir.GetOrFetchActor(context.Background(), form)
		assert.NoError(t, err, form)
		assert.Equal(t, actorId, actor.Id, form)
	}
}

func Test_GetOrFetchActor_LocalUnknown(t *testing.T) {

	ctrl, _, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	_, err := dir.GetOrFetchActor(context.Background(), fmt.Sprintf("nobody@%s", localHost))

	assert.ErrorIs(t, err, logic.ErrDiscoveryNotFound)
}

func Test_GetOrFetchActor_RemoteFetchAndPersist(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	identifier := fmt.Sprintf("%s@%s", callerName, callerHost)
	h.mockBlocked.EXPECT().IsBlocked(callerHost).Return(false, nil).Times(1)
	h.mockResolver.EXPECT().Resolve(gomock.Any(), identifier).Return(callerRecord(), nil).Times(1)
	h.mockFetcher.EXPECT().Fetch(gomock.Any(), gomock.Cond(strStartsWith("https://"+callerHost))).
		Return(&dto.ActorInfo{
			Id:                callerActorUri,
			Type:              "Person",
			PreferredUserName: callerName,
			Inbox:             callerActorUri + "/inbox",
			Endpoints:         dto.ActorEndpoints{SharedInbox: fmt.Sprintf("https://%s/inbox", callerHost)},
			PublicKey:         dto.PublicKey{PublicKeyPem: "PEM"},
		}, nil).Times(1)

	actor, err := dir.GetOrFetchActor(context.Background(), identifier)
	assert.NoError(t, err)
	assert.Equal(t, callerActorUri, actor.Uri)
	assert.Equal(t, callerHost, actor.Host)
	assert.Equal(t, callerName, actor.Handle)
	assert.False(t, actor.IsLocal)

	// Second call hits the persisted actor; no second fetch
	again, err := dir.GetOrFetchActor(context.Background(), identifier)
	assert.NoError(t, err)
	assert.Equal(t, actor.Id, again.Id)
}

func Test_CreateLocalIdentity(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockKeyStore.EXPECT().MakeKeyPair().Return("PUB", "PRIV", nil)

	accountId, err := dir.CreateAccount("mira@example.com", true)
	assert.NoError(t, err)

	actor, err := dir.CreateLocalIdentity(accountId, "mira")
	assert.NoError(t, err)
	assert.True(t, actor.IsLocal)
	assert.Equal(t, fmt.Sprintf("https://%s/u/mira", localHost), actor.Uri)
	assert.Equal(t, "PUB", actor.PubKey)

	acctId, err := h.repo.GetAccountIdForActor(actor.Id)
	assert.NoError(t, err)
	assert.Equal(t, accountId, acctId)
}

func Test_CreateLocalIdentity_DupeHandle(t *testing.T) {

	ctrl, h, dir := setupDirectoryTest(t)
	defer ctrl.Finish()

	h.mockKeyStore.EXPECT().MakeKeyPair().Return("PUB", "PRIV", nil).Times(2)

	accountId, err := dir.CreateAccount("mira@example.com", false)
	assert.NoError(t, err)

	_, err = dir.CreateLocalIdentity(accountId, "mira")
	assert.NoError(t, err)

	_, err = dir.CreateLocalIdentity(accountId, "mira")
	assert.Error(t, err)
}
