package logic

import (
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"lamia/dal"
	"lamia/dto"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_visibility.go -package mocks lamia/logic IVisibility

const (
	DecisionShow     = "show"
	DecisionMinimize = "minimize"
	DecisionHide     = "hide"

	ReasonBlocked = "blocked"
	ReasonMuted   = "muted"
	ReasonFilter  = "filter"
)

// IVisibility decides, for one viewer and one piece of content, whether the
// content is shown, minimized or hidden. Read-only over the relationship
// tables.
type IVisibility interface {
	Check(viewerAccountId int64, content *dto.ContentSummary) (*dto.VisibilityResponse, error)
}

type visibility struct {
	cfg           *shared.Config
	logger        shared.ILogger
	repo          dal.IRepo
	relationships IRelationships
	metrics       IMetrics
	sanitizer     *bluemonday.Policy
}

func NewVisibility(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	relationships IRelationships,
	metrics IMetrics,
) IVisibility {
	return &visibility{
		cfg:           cfg,
		logger:        logger,
		repo:          repo,
		relationships: relationships,
		metrics:       metrics,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// Check applies the moderation overlay in precedence order: block beats
// mute beats filters; among matching filters the most restrictive outcome
// wins.
func (vis *visibility) Check(viewerAccountId int64, content *dto.ContentSummary) (*dto.VisibilityResponse, error) {

	authorActorIds, err := vis.authorActorIds(content.AuthorActorId)
	if err != nil {
		return nil, err
	}

	// A block against any of the author account's actors hides everything
	for _, actorId := range authorActorIds {
		block, err := vis.repo.GetBlockEdge(viewerAccountId, actorId)
		if err != nil {
			return nil, err
		}
		if block != nil {
			return &dto.VisibilityResponse{Decision: DecisionHide, Reason: ReasonBlocked}, nil
		}
	}

	for _, actorId := range authorActorIds {
		mute, err := vis.repo.GetMuteEdge(viewerAccountId, actorId)
		if err != nil {
			return nil, err
		}
		if mute != nil {
			// Muted content is still counted, just visually suppressed
			return &dto.VisibilityResponse{Decision: DecisionMinimize, Reason: ReasonMuted}, nil
		}
	}

	return vis.applyFilters(viewerAccountId, content)
}

// authorActorIds expands the author to every actor its owning account
// controls, so blocking one identity covers its siblings. Remote actors
// stand alone.
func (vis *visibility) authorActorIds(authorActorId int64) ([]int64, error) {

	accountId, err := vis.repo.GetAccountIdForActor(authorActorId)
	if err != nil {
		return nil, err
	}
	if accountId == 0 {
		return []int64{authorActorId}, nil
	}
	actorIds, err := vis.repo.GetActorIdsForAccount(accountId)
	if err != nil {
		return nil, err
	}
	if len(actorIds) == 0 {
		actorIds = []int64{authorActorId}
	}
	return actorIds, nil
}

func (vis *visibility) applyFilters(viewerAccountId int64, content *dto.ContentSummary) (*dto.VisibilityResponse, error) {

	rules, err := vis.relationships.ActiveFilters(viewerAccountId, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(vis.sanitizer.Sanitize(content.Text))
	decision := DecisionShow
	for _, rule := range rules {
		if rule.ScopeActorId != 0 && rule.ScopeActorId != content.AuthorActorId {
			continue
		}
		if !matchesFilter(rule, text, content.Tags) {
			continue
		}
		if rule.Hide {
			vis.metrics.FilterMatched(DecisionHide)
			// Nothing beats hide; no point scanning further
			return &dto.VisibilityResponse{Decision: DecisionHide, Reason: ReasonFilter}, nil
		}
		vis.metrics.FilterMatched(DecisionMinimize)
		decision = DecisionMinimize
	}

	if decision == DecisionShow {
		return &dto.VisibilityResponse{Decision: DecisionShow}, nil
	}
	return &dto.VisibilityResponse{Decision: decision, Reason: ReasonFilter}, nil
}

func matchesFilter(rule *dal.FilterRule, loweredText string, tags []string) bool {
	query := strings.ToLower(rule.Query)
	if strings.Contains(loweredText, query) {
		return true
	}
	for _, tag := range tags {
		if strings.EqualFold(tag, query) {
			return true
		}
	}
	return false
}
