package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lamia/dal"
	"lamia/dto"
	"lamia/logic"
	"lamia/shared"
	"lamia/test/mocks"
)

const viewerAccountId = int64(42)
const authorActorId = int64(9)

type visibilityHarness struct {
	cfg               *shared.Config
	mockLogger        *mocks.MockILogger
	mockRepo          *mocks.MockIRepo
	mockRelationships *mocks.MockIRelationships
	mockMetrics       *mocks.MockIMetrics
}

func setupVisibilityTest(t *testing.T) (*gomock.Controller, *visibilityHarness, logic.IVisibility) {

	ctrl := gomock.NewController(t)

	h := &visibilityHarness{
		cfg:               &shared.Config{Host: localHost},
		mockLogger:        mocks.NewMockILogger(ctrl),
		mockRepo:          mocks.NewMockIRepo(ctrl),
		mockRelationships: mocks.NewMockIRelationships(ctrl),
		mockMetrics:       mocks.NewMockIMetrics(ctrl),
	}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	vis := logic.NewVisibility(h.cfg, h.mockLogger, h.mockRepo, h.mockRelationships, h.mockMetrics)

	return ctrl, h, vis
}

// expectStandaloneAuthor makes the author a remote actor with no owning
// account.
func (h *visibilityHarness) expectStandaloneAuthor() {
	h.mockRepo.EXPECT().GetAccountIdForActor(authorActorId).Return(int64(0), nil)
}

func (h *visibilityHarness) expectNoBlocksNoMutes() {
	h.mockRepo.EXPECT().GetBlockEdge(viewerAccountId, authorActorId).Return(nil, nil)
	h.mockRepo.EXPECT().GetMuteEdge(viewerAccountId, authorActorId).Return(nil, nil)
}

func (h *visibilityHarness) expectFilters(rules ...*dal.FilterRule) {
	h.mockRelationships.EXPECT().ActiveFilters(viewerAccountId, gomock.Any()).Return(rules, nil)
}

func Test_Visibility_ShowByDefault(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters()

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "<p>An uneventful day.</p>",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionShow, res.Decision)
	assert.Empty(t, res.Reason)
}

func Test_Visibility_BlockHides(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.mockRepo.EXPECT().GetBlockEdge(viewerAccountId, authorActorId).
		Return(&dal.BlockEdge{AccountId: viewerAccountId, TargetActorId: authorActorId}, nil)

	// Mutes and filters are never consulted once a block matches

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{AuthorActorId: authorActorId})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionHide, res.Decision)
	assert.Equal(t, logic.ReasonBlocked, res.Reason)
}

func Test_Visibility_BlockOnSiblingActorHides(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	siblingActorId := int64(10)
	h.mockRepo.EXPECT().GetAccountIdForActor(authorActorId).Return(int64(7), nil)
	h.mockRepo.EXPECT().GetActorIdsForAccount(int64(7)).
		Return([]int64{authorActorId, siblingActorId}, nil)
	h.mockRepo.EXPECT().GetBlockEdge(viewerAccountId, authorActorId).Return(nil, nil)
	h.mockRepo.EXPECT().GetBlockEdge(viewerAccountId, siblingActorId).
		Return(&dal.BlockEdge{AccountId: viewerAccountId, TargetActorId: siblingActorId}, nil)

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{AuthorActorId: authorActorId})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionHide, res.Decision)
	assert.Equal(t, logic.ReasonBlocked, res.Reason)
}

func Test_Visibility_MuteMinimizes(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.mockRepo.EXPECT().GetBlockEdge(viewerAccountId, authorActorId).Return(nil, nil)
	h.mockRepo.EXPECT().GetMuteEdge(viewerAccountId, authorActorId).
		Return(&dal.MuteEdge{AccountId: viewerAccountId, TargetActorId: authorActorId}, nil)

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{AuthorActorId: authorActorId})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionMinimize, res.Decision)
	assert.Equal(t, logic.ReasonMuted, res.Reason)
}

func Test_Visibility_FilterHide(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(&dal.FilterRule{
		AccountId: viewerAccountId, Query: "spoilers", Hide: true, Forever: true})

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "<p>Big <b>SPOILERS</b> ahead!</p>",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionHide, res.Decision)
	assert.Equal(t, logic.ReasonFilter, res.Reason)
}

func Test_Visibility_FilterMinimize(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(&dal.FilterRule{
		AccountId: viewerAccountId, Query: "politics", Minimize: true, Forever: true})

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "<p>No politics today, promise</p>",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionMinimize, res.Decision)
	assert.Equal(t, logic.ReasonFilter, res.Reason)
}

func Test_Visibility_MostRestrictiveFilterWins(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(
		&dal.FilterRule{AccountId: viewerAccountId, Query: "cats", Minimize: true, Forever: true},
		&dal.FilterRule{AccountId: viewerAccountId, Query: "dogs", Hide: true, Forever: true})

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "cats and dogs living together",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionHide, res.Decision)
	assert.Equal(t, logic.ReasonFilter, res.Reason)
}

func Test_Visibility_FilterMatchesTag(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(&dal.FilterRule{
		AccountId: viewerAccountId, Query: "nsfw", Minimize: true, Forever: true})

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "<p>Lunch pics</p>",
		Tags:          []string{"Food", "NSFW"},
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionMinimize, res.Decision)
}

func Test_Visibility_ScopedFilterOnlyHitsItsActor(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	scoped := &dal.FilterRule{
		AccountId: viewerAccountId, Query: "spoilers", Hide: true, Forever: true,
		ScopeActorId: authorActorId + 1}

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(scoped)

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "spoilers everywhere",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionShow, res.Decision)

	// Same rule scoped to the author does fire
	scoped.ScopeActorId = authorActorId
	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(scoped)

	res, err = vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          "spoilers everywhere",
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionHide, res.Decision)
}

func Test_Visibility_MarkupDoesNotMatchFilters(t *testing.T) {

	ctrl, h, vis := setupVisibilityTest(t)
	defer ctrl.Finish()

	h.expectStandaloneAuthor()
	h.expectNoBlocksNoMutes()
	h.expectFilters(&dal.FilterRule{
		AccountId: viewerAccountId, Query: "href", Hide: true, Forever: true})

	res, err := vis.Check(viewerAccountId, &dto.ContentSummary{
		AuthorActorId: authorActorId,
		Text:          `<p><a href="https://example.com">a link</a></p>`,
	})

	assert.NoError(t, err)
	assert.Equal(t, logic.DecisionShow, res.Decision)
}
