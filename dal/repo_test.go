package dal

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"lamia/shared"
)

// setupRepoTest opens a throwaway sqlite database and runs the init scripts,
// so these tests exercise the real storage format rather than a fake.
func setupRepoTest(t *testing.T) IRepo {
	cfg := &shared.Config{
		DbFile: filepath.Join(t.TempDir(), "lamia-test.db"),
	}
	repo := NewRepo(cfg, log.New(io.Discard))
	repo.InitUpdateDb()
	return repo
}

func seedActor(t *testing.T, repo IRepo, handle string) int64 {
	actor := Actor{
		CreatedAt: time.Now().UTC(),
		Uri:       "https://lamia.social/u/" + handle,
		Handle:    handle,
		Host:      "lamia.social",
		IsLocal:   true,
	}
	isNew, id, err := repo.AddActorIfNotExist(&actor, "PRIV")
	assert.NoError(t, err)
	assert.True(t, isNew)
	return id
}

func Test_Repo_UpsertFollowEdgeIfStatus(t *testing.T) {

	repo := setupRepoTest(t)
	mira := seedActor(t, repo, "mira")
	vale := seedActor(t, repo, "vale")
	now := time.Now().UTC()

	edge := FollowEdge{
		SourceActorId:     mira,
		TargetActorId:     vale,
		Status:            FollowPending,
		RequestActivityId: "act-1",
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	// Missing row counts as FollowNone
	ok, err := repo.UpsertFollowEdgeIfStatus(&edge, FollowNone)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A second writer expecting FollowNone loses
	ok, err = repo.UpsertFollowEdgeIfStatus(&edge, FollowNone)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Pending -> Approved via the update path
	edge.Status = FollowApproved
	edge.LastUpdatedAt = time.Now().UTC()
	ok, err = repo.UpsertFollowEdgeIfStatus(&edge, FollowPending)
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetFollowEdge(mira, vale)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, FollowApproved, stored.Status)
	assert.Equal(t, "act-1", stored.RequestActivityId)
}

func Test_Repo_DeleteFollowEdgeIfStatus(t *testing.T) {

	repo := setupRepoTest(t)
	mira := seedActor(t, repo, "mira")
	vale := seedActor(t, repo, "vale")
	now := time.Now().UTC()

	edge := FollowEdge{
		SourceActorId: mira,
		TargetActorId: vale,
		Status:        FollowApproved,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	ok, err := repo.UpsertFollowEdgeIfStatus(&edge, FollowNone)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Wrong expected state deletes nothing
	ok, err = repo.DeleteFollowEdgeIfStatus(mira, vale, FollowPending)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteFollowEdgeIfStatus(mira, vale, FollowApproved)
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetFollowEdge(mira, vale)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func Test_Repo_ApplyAccountBlock(t *testing.T) {

	repo := setupRepoTest(t)
	mira := seedActor(t, repo, "mira")
	blog := seedActor(t, repo, "mira-blog")
	vale := seedActor(t, repo, "vale")
	acct, err := repo.AddAccount(&Account{CreatedAt: time.Now().UTC(), Email: "mira@example.com"})
	assert.NoError(t, err)
	now := time.Now().UTC()

	for _, pair := range [][2]int64{{mira, vale}, {vale, blog}} {
		edge := FollowEdge{
			SourceActorId: pair[0],
			TargetActorId: pair[1],
			Status:        FollowApproved,
			CreatedAt:     now,
			LastUpdatedAt: now,
		}
		ok, err := repo.UpsertFollowEdgeIfStatus(&edge, FollowNone)
		assert.NoError(t, err)
		assert.True(t, ok)
	}

	isNew, err := repo.ApplyAccountBlock(acct, []int64{mira, blog}, vale, now)
	assert.NoError(t, err)
	assert.True(t, isNew)

	// Both directions forced to blocked
	for _, pair := range [][2]int64{{mira, vale}, {vale, blog}} {
		stored, err := repo.GetFollowEdge(pair[0], pair[1])
		assert.NoError(t, err)
		assert.NotNil(t, stored)
		assert.Equal(t, FollowBlocked, stored.Status)
	}

	blockEdge, err := repo.GetBlockEdge(acct, vale)
	assert.NoError(t, err)
	assert.NotNil(t, blockEdge)

	// Reapplying hits the duplicate-key path
	isNew, err = repo.ApplyAccountBlock(acct, []int64{mira, blog}, vale, now)
	assert.NoError(t, err)
	assert.False(t, isNew)
}

func Test_Repo_DeleteExpiredFilterRules(t *testing.T) {

	repo := setupRepoTest(t)
	acct, err := repo.AddAccount(&Account{CreatedAt: time.Now().UTC(), Email: "mira@example.com"})
	assert.NoError(t, err)
	now := time.Now().UTC().Truncate(time.Second)

	forever := FilterRule{AccountId: acct, Query: "keep", Hide: true,
		CreatedAt: now.Add(-24 * time.Hour), Forever: true}
	spent := FilterRule{AccountId: acct, Query: "spent", Hide: true,
		CreatedAt: now.Add(-2 * time.Hour), DurationSec: 3600}
	live := FilterRule{AccountId: acct, Query: "live", Minimize: true,
		CreatedAt: now.Add(-time.Hour), DurationSec: 7200}
	for _, rule := range []*FilterRule{&forever, &spent, &live} {
		_, err = repo.AddFilterRule(rule)
		assert.NoError(t, err)
	}

	n, err := repo.DeleteExpiredFilterRules(now)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	rules, err := repo.GetFilterRules(acct)
	assert.NoError(t, err)
	assert.Len(t, rules, 2)
	queries := []string{rules[0].Query, rules[1].Query}
	assert.Contains(t, queries, "keep")
	assert.Contains(t, queries, "live")
}
