package test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lamia/dal"
	"lamia/dto"
	"lamia/logic"
	"lamia/shared"
	"lamia/test/mocks"
)

type relationshipsHarness struct {
	cfg          *shared.Config
	repo         *fakeRepo
	mockLogger   *mocks.MockILogger
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockMetrics  *mocks.MockIMetrics
}

func setupRelationshipsTest(t *testing.T) (*gomock.Controller, *relationshipsHarness, logic.IRelationships) {

	ctrl := gomock.NewController(t)

	h := &relationshipsHarness{
		cfg: &shared.Config{
			Host:               localHost,
			FilterSweepMinutes: 60,
		},
		repo:         newFakeRepo(),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	rel := logic.NewRelationships(h.cfg, h.mockLogger, h.repo, h.mockKeyStore,
		h.mockSender, h.mockMetrics)

	return ctrl, h, rel
}

// seedAccount creates an account plus one local actor belonging to it.
func (h *relationshipsHarness) seedAccount(approvalForFollows bool, handle string) (accountId, actorId int64) {
	accountId, _ = h.repo.AddAccount(&dal.Account{
		CreatedAt:          time.Now().UTC(),
		Email:              handle + "@example.com",
		ApprovalForFollows: approvalForFollows,
	})
	actorId = h.repo.addLocalActor(accountId, handle)
	return
}

func activityOfType(actType string) func(x any) bool {
	return func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		return ok && act.Type == actType
	}
}

func Test_RequestFollow_LocalAutoApproved(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(false, "nilam")

	status, err := rel.RequestFollow(sourceId, targetId)

	assert.NoError(t, err)
	assert.Equal(t, dal.FollowApproved, status)

	edge, err := h.repo.GetFollowEdge(sourceId, targetId)
	assert.NoError(t, err)
	assert.NotNil(t, edge)
	assert.Equal(t, dal.FollowApproved, edge.Status)
	assert.NotEmpty(t, edge.RequestActivityId)
}

func Test_RequestFollow_LocalNeedsApproval(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(true, "nilam")

	status, err := rel.RequestFollow(sourceId, targetId)

	assert.NoError(t, err)
	assert.Equal(t, dal.FollowPending, status)
}

func Test_RequestFollow_RemoteSendsFollowActivity(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	targetId := h.repo.addRemoteActor(callerName, callerHost)
	target, _ := h.repo.GetActorById(targetId)

	h.mockKeyStore.EXPECT().GetPrivKey(sourceId).Return(nil, nil)
	h.mockSender.EXPECT().Send(gomock.Any(), "mira", target.Inbox,
		gomock.Cond(activityOfType("Follow"))).Return(nil)

	status, err := rel.RequestFollow(sourceId, targetId)

	assert.NoError(t, err)
	assert.Equal(t, dal.FollowPending, status)
}

func Test_RequestFollow_RepeatObservesSettledState(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(false, "nilam")

	first, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)

	second, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_RequestFollow_BlockedPairConflicts(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	accountId, sourceId := h.seedAccount(false, "mira")
	targetId := h.repo.addRemoteActor(callerName, callerHost)

	assert.NoError(t, rel.BlockAccount(accountId, targetId))

	h.mockKeyStore.EXPECT().GetPrivKey(gomock.Any()).Return(nil, nil).AnyTimes()
	h.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	// The block didn't create a follow edge, so a new request is still
	// possible; sever an existing one and the pair is poisoned for good.
	status, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)
	assert.Equal(t, dal.FollowPending, status)

	assert.NoError(t, rel.BlockAccount(accountId, targetId))

	_, err = rel.RequestFollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_ApproveFollow_SendsAcceptToRemote(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	sourceId := h.repo.addRemoteActor(callerName, callerHost)
	_, targetId := h.seedAccount(true, "nilam")
	source, _ := h.repo.GetActorById(sourceId)

	status, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)
	assert.Equal(t, dal.FollowPending, status)

	h.mockKeyStore.EXPECT().GetPrivKey(targetId).Return(nil, nil)
	h.mockSender.EXPECT().Send(gomock.Any(), "nilam", source.Inbox,
		gomock.Cond(activityOfType("Accept"))).Return(nil)

	assert.NoError(t, rel.ApproveFollow(sourceId, targetId))

	edge, _ := h.repo.GetFollowEdge(sourceId, targetId)
	assert.Equal(t, dal.FollowApproved, edge.Status)
}

func Test_ApproveFollow_NothingPending(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(false, "nilam")

	err := rel.ApproveFollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)

	// Auto-approved edges are not pending either
	_, err = rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)
	err = rel.ApproveFollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_RejectFollow_DeletesPendingEdge(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(true, "nilam")

	_, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)

	assert.NoError(t, rel.RejectFollow(sourceId, targetId))

	edge, _ := h.repo.GetFollowEdge(sourceId, targetId)
	assert.Nil(t, edge)

	err = rel.RejectFollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_Unfollow_DeletesApprovedEdge(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(false, "nilam")

	_, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)

	assert.NoError(t, rel.Unfollow(sourceId, targetId))

	edge, _ := h.repo.GetFollowEdge(sourceId, targetId)
	assert.Nil(t, edge)

	err = rel.Unfollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_Unfollow_SendsUndoToRemote(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	targetId := h.repo.addRemoteActor(callerName, callerHost)
	target, _ := h.repo.GetActorById(targetId)

	h.mockKeyStore.EXPECT().GetPrivKey(sourceId).Return(nil, nil).Times(2)
	h.mockSender.EXPECT().Send(gomock.Any(), "mira", target.Inbox,
		gomock.Cond(activityOfType("Follow"))).Return(nil)

	_, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)
	assert.NoError(t, rel.AcceptRemoteFollow(sourceId, targetId))

	h.mockSender.EXPECT().Send(gomock.Any(), "mira", target.Inbox,
		gomock.Cond(activityOfType("Undo"))).Return(nil)

	assert.NoError(t, rel.Unfollow(sourceId, targetId))
}

func Test_AcceptRemoteFollow_SettlesPending(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	targetId := h.repo.addRemoteActor(callerName, callerHost)

	h.mockKeyStore.EXPECT().GetPrivKey(sourceId).Return(nil, nil)
	h.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := rel.RequestFollow(sourceId, targetId)
	assert.NoError(t, err)

	assert.NoError(t, rel.AcceptRemoteFollow(sourceId, targetId))

	edge, _ := h.repo.GetFollowEdge(sourceId, targetId)
	assert.Equal(t, dal.FollowApproved, edge.Status)

	err = rel.AcceptRemoteFollow(sourceId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_BlockAccount_SeversBothDirections(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	accountId, identityId := h.seedAccount(false, "mira")
	blogActorId := h.repo.addLocalActor(accountId, "mirasblog")
	targetId := h.repo.addRemoteActor(callerName, callerHost)

	h.mockKeyStore.EXPECT().GetPrivKey(gomock.Any()).Return(nil, nil).AnyTimes()
	h.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	_, err := rel.RequestFollow(identityId, targetId)
	assert.NoError(t, err)
	assert.NoError(t, rel.AcceptRemoteFollow(identityId, targetId))
	_, err = rel.RequestFollow(targetId, blogActorId)
	assert.NoError(t, err)

	assert.NoError(t, rel.BlockAccount(accountId, targetId))

	outbound, _ := h.repo.GetFollowEdge(identityId, targetId)
	assert.Equal(t, dal.FollowBlocked, outbound.Status)
	inbound, _ := h.repo.GetFollowEdge(targetId, blogActorId)
	assert.Equal(t, dal.FollowBlocked, inbound.Status)

	block, _ := h.repo.GetBlockEdge(accountId, targetId)
	assert.NotNil(t, block)

	// Blocking again is a no-op, not an error
	assert.NoError(t, rel.BlockAccount(accountId, targetId))

	// Blocked edges never go back to approved
	err = rel.ApproveFollow(identityId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
	_, err = rel.RequestFollow(identityId, targetId)
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)
}

func Test_MuteUnmute(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	accountId, _ := h.seedAccount(false, "mira")
	targetId := h.repo.addRemoteActor(callerName, callerHost)

	assert.NoError(t, rel.Mute(accountId, targetId))
	assert.NoError(t, rel.Mute(accountId, targetId))

	mute, _ := h.repo.GetMuteEdge(accountId, targetId)
	assert.NotNil(t, mute)

	assert.NoError(t, rel.Unmute(accountId, targetId))
	mute, _ = h.repo.GetMuteEdge(accountId, targetId)
	assert.Nil(t, mute)
}

func Test_AddFilter_Validation(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	accountId, _ := h.seedAccount(false, "mira")

	_, err := rel.AddFilter(&dal.FilterRule{AccountId: accountId, Query: "spoilers"})
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)

	_, err = rel.AddFilter(&dal.FilterRule{AccountId: accountId, Forever: true})
	assert.ErrorIs(t, err, logic.ErrRelationshipConflict)

	id, err := rel.AddFilter(&dal.FilterRule{AccountId: accountId, Query: "spoilers", Forever: true, Hide: true})
	assert.NoError(t, err)
	assert.NotZero(t, id)
}

func Test_ActiveFilters_LazyExpiry(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	accountId, _ := h.seedAccount(false, "mira")
	now := time.Now().UTC()

	_, err := rel.AddFilter(&dal.FilterRule{
		AccountId: accountId, Query: "spoilers", Forever: true, Minimize: true})
	assert.NoError(t, err)
	spentId, err := rel.AddFilter(&dal.FilterRule{
		AccountId: accountId, Query: "politics", DurationSec: 60, Minimize: true,
		CreatedAt: now.Add(-2 * time.Minute)})
	assert.NoError(t, err)

	active, err := rel.ActiveFilters(accountId, now)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "spoilers", active[0].Query)

	// The spent rule is still stored until a sweep removes it
	all, _ := h.repo.GetFilterRules(accountId)
	assert.Len(t, all, 2)

	count, err := h.repo.DeleteExpiredFilterRules(now)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	all, _ = h.repo.GetFilterRules(accountId)
	assert.Len(t, all, 1)
	assert.NotEqual(t, spentId, all[0].Id)
}

func Test_RequestFollow_ConcurrentRequestsSettleOnce(t *testing.T) {

	ctrl, h, rel := setupRelationshipsTest(t)
	defer ctrl.Finish()

	_, sourceId := h.seedAccount(false, "mira")
	_, targetId := h.seedAccount(false, "nilam")

	const workers = 16
	results := make([]dal.FollowStatus, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(ix int) {
			defer wg.Done()
			results[ix], errs[ix] = rel.RequestFollow(sourceId, targetId)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, dal.FollowApproved, results[i])
	}

	count, err := h.repo.CountFollowEdges(dal.FollowApproved)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
