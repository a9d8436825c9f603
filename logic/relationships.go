package logic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"lamia/dal"
	"lamia/dto"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_relationships.go -package mocks lamia/logic IRelationships

// IRelationships is the single source of truth for follow, block, mute and
// filter edges. Nothing else writes these rows.
type IRelationships interface {
	RequestFollow(sourceActorId, targetActorId int64) (dal.FollowStatus, error)
	ApproveFollow(sourceActorId, targetActorId int64) error
	RejectFollow(sourceActorId, targetActorId int64) error
	Unfollow(sourceActorId, targetActorId int64) error
	AcceptRemoteFollow(sourceActorId, targetActorId int64) error
	BlockAccount(accountId, targetActorId int64) error
	Mute(accountId, targetActorId int64) error
	Unmute(accountId, targetActorId int64) error
	AddFilter(rule *dal.FilterRule) (int64, error)
	RemoveFilter(accountId, ruleId int64) error
	ActiveFilters(accountId int64, now time.Time) ([]*dal.FilterRule, error)
}

const upsertRetries = 3
const defaultFilterSweepMinutes = 30

type relationships struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	keyStore IKeyStore
	sender   IActivitySender
	metrics  IMetrics
	idb      shared.IdBuilder
}

func NewRelationships(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IRelationships {
	rel := relationships{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		keyStore: keyStore,
		sender:   sender,
		metrics:  metrics,
		idb:      shared.IdBuilder{Host: cfg.Host},
	}
	go rel.filterSweepLoop()
	return &rel
}

// RequestFollow creates the edge for the ordered pair. Local targets whose
// account does not review follows go straight to approved; everything else
// is pending. A concurrent duplicate request observes the settled state
// instead of erroring.
func (rel *relationships) RequestFollow(sourceActorId, targetActorId int64) (dal.FollowStatus, error) {

	for i := 0; i < upsertRetries; i++ {

		edge, err := rel.repo.GetFollowEdge(sourceActorId, targetActorId)
		if err != nil {
			return dal.FollowNone, err
		}
		if edge != nil {
			if edge.Status == dal.FollowBlocked {
				return dal.FollowNone, fmt.Errorf("%w: follow %d->%d is blocked",
					ErrRelationshipConflict, sourceActorId, targetActorId)
			}
			// Already pending or approved; nothing to do
			return edge.Status, nil
		}

		nextStatus, err := rel.statusForNewFollow(targetActorId)
		if err != nil {
			return dal.FollowNone, err
		}

		now := time.Now().UTC()
		newEdge := dal.FollowEdge{
			SourceActorId:     sourceActorId,
			TargetActorId:     targetActorId,
			Status:            nextStatus,
			RequestActivityId: rel.idb.ActivityUrl(uuid.NewString()),
			CreatedAt:         now,
			LastUpdatedAt:     now,
		}
		ok, err := rel.repo.UpsertFollowEdgeIfStatus(&newEdge, dal.FollowNone)
		if err != nil {
			return dal.FollowNone, err
		}
		if !ok {
			// Lost the race; next pass reads the winner's edge
			continue
		}

		rel.updateFollowGauges()
		rel.sendFollowToRemote(&newEdge)
		return nextStatus, nil
	}

	return dal.FollowNone, fmt.Errorf("%w: follow %d->%d kept changing under us",
		ErrRelationshipConflict, sourceActorId, targetActorId)
}

func (rel *relationships) statusForNewFollow(targetActorId int64) (dal.FollowStatus, error) {

	accountId, err := rel.repo.GetAccountIdForActor(targetActorId)
	if err != nil {
		return dal.FollowNone, err
	}
	if accountId == 0 {
		// Remote target: pending until the remote side accepts
		return dal.FollowPending, nil
	}
	acct, err := rel.repo.GetAccount(accountId)
	if err != nil {
		return dal.FollowNone, err
	}
	if acct == nil {
		return dal.FollowNone, fmt.Errorf("actor %d maps to missing account %d", targetActorId, accountId)
	}
	if acct.ApprovalForFollows {
		return dal.FollowPending, nil
	}
	return dal.FollowApproved, nil
}

// sendFollowToRemote fires the signed Follow activity when the target lives
// elsewhere. Delivery failure does not unwind the edge; the remote side
// settles it later.
func (rel *relationships) sendFollowToRemote(edge *dal.FollowEdge) {

	source, target, err := rel.getEdgeActors(edge.SourceActorId, edge.TargetActorId)
	if err != nil {
		rel.logger.Warnf("Failed to load actors for follow %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
		return
	}
	if target.IsLocal || !source.IsLocal {
		return
	}

	privKey, err := rel.keyStore.GetPrivKey(source.Id)
	if err != nil {
		rel.logger.Warnf("Failed to get private key for actor %d: %v", source.Id, err)
		return
	}
	act := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      edge.RequestActivityId,
		Type:    "Follow",
		Actor:   source.Uri,
		Object:  target.Uri,
	}
	if err = rel.sender.Send(privKey, source.Handle, target.Inbox, &act); err != nil {
		rel.logger.Warnf("Failed to send 'Follow' activity for %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
	}
}

func (rel *relationships) getEdgeActors(sourceActorId, targetActorId int64) (*dal.Actor, *dal.Actor, error) {
	source, err := rel.repo.GetActorById(sourceActorId)
	if err != nil {
		return nil, nil, err
	}
	target, err := rel.repo.GetActorById(targetActorId)
	if err != nil {
		return nil, nil, err
	}
	if source == nil || target == nil {
		return nil, nil, fmt.Errorf("unknown actor in pair %d->%d", sourceActorId, targetActorId)
	}
	return source, target, nil
}

func (rel *relationships) ApproveFollow(sourceActorId, targetActorId int64) error {

	edge, err := rel.repo.GetFollowEdge(sourceActorId, targetActorId)
	if err != nil {
		return err
	}
	if edge == nil || edge.Status != dal.FollowPending {
		return fmt.Errorf("%w: no pending follow %d->%d to approve",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}

	updated := *edge
	updated.Status = dal.FollowApproved
	updated.LastUpdatedAt = time.Now().UTC()
	ok, err := rel.repo.UpsertFollowEdgeIfStatus(&updated, dal.FollowPending)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: follow %d->%d is no longer pending",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}

	rel.updateFollowGauges()
	rel.sendAcceptToRemote(&updated)
	return nil
}

// sendAcceptToRemote tells a remote follower that a local actor approved its
// request.
func (rel *relationships) sendAcceptToRemote(edge *dal.FollowEdge) {

	source, target, err := rel.getEdgeActors(edge.SourceActorId, edge.TargetActorId)
	if err != nil {
		rel.logger.Warnf("Failed to load actors for follow %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
		return
	}
	if source.IsLocal || !target.IsLocal {
		return
	}

	privKey, err := rel.keyStore.GetPrivKey(target.Id)
	if err != nil {
		rel.logger.Warnf("Failed to get private key for actor %d: %v", target.Id, err)
		return
	}
	act := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      rel.idb.ActivityUrl(uuid.NewString()),
		Type:    "Accept",
		Actor:   target.Uri,
		Object: dto.ActivityOut{
			Id:     edge.RequestActivityId,
			Type:   "Follow",
			Actor:  source.Uri,
			Object: target.Uri,
		},
	}
	if err = rel.sender.Send(privKey, target.Handle, source.Inbox, &act); err != nil {
		rel.logger.Warnf("Failed to send 'Accept' activity for %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
	}
}

func (rel *relationships) RejectFollow(sourceActorId, targetActorId int64) error {

	ok, err := rel.repo.DeleteFollowEdgeIfStatus(sourceActorId, targetActorId, dal.FollowPending)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no pending follow %d->%d to reject",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}
	rel.updateFollowGauges()
	return nil
}

func (rel *relationships) Unfollow(sourceActorId, targetActorId int64) error {

	edge, err := rel.repo.GetFollowEdge(sourceActorId, targetActorId)
	if err != nil {
		return err
	}
	if edge == nil || edge.Status != dal.FollowApproved {
		return fmt.Errorf("%w: no approved follow %d->%d to remove",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}

	ok, err := rel.repo.DeleteFollowEdgeIfStatus(sourceActorId, targetActorId, dal.FollowApproved)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: follow %d->%d is no longer approved",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}

	rel.updateFollowGauges()
	rel.sendUndoToRemote(edge)
	return nil
}

func (rel *relationships) sendUndoToRemote(edge *dal.FollowEdge) {

	source, target, err := rel.getEdgeActors(edge.SourceActorId, edge.TargetActorId)
	if err != nil {
		rel.logger.Warnf("Failed to load actors for follow %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
		return
	}
	if target.IsLocal || !source.IsLocal {
		return
	}

	privKey, err := rel.keyStore.GetPrivKey(source.Id)
	if err != nil {
		rel.logger.Warnf("Failed to get private key for actor %d: %v", source.Id, err)
		return
	}
	act := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      rel.idb.ActivityUrl(uuid.NewString()),
		Type:    "Undo",
		Actor:   source.Uri,
		Object: dto.ActivityOut{
			Id:     edge.RequestActivityId,
			Type:   "Follow",
			Actor:  source.Uri,
			Object: target.Uri,
		},
	}
	if err = rel.sender.Send(privKey, source.Handle, target.Inbox, &act); err != nil {
		rel.logger.Warnf("Failed to send 'Undo' activity for %d->%d: %v",
			edge.SourceActorId, edge.TargetActorId, err)
	}
}

// AcceptRemoteFollow settles a pending follow of a remote target after that
// server sent back its Accept.
func (rel *relationships) AcceptRemoteFollow(sourceActorId, targetActorId int64) error {

	edge, err := rel.repo.GetFollowEdge(sourceActorId, targetActorId)
	if err != nil {
		return err
	}
	if edge == nil || edge.Status != dal.FollowPending {
		return fmt.Errorf("%w: no pending follow %d->%d to accept",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}

	updated := *edge
	updated.Status = dal.FollowApproved
	updated.LastUpdatedAt = time.Now().UTC()
	ok, err := rel.repo.UpsertFollowEdgeIfStatus(&updated, dal.FollowPending)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: follow %d->%d is no longer pending",
			ErrRelationshipConflict, sourceActorId, targetActorId)
	}
	rel.updateFollowGauges()
	return nil
}

// BlockAccount severs every follow between the account's actors and the
// target, both directions, and records the block. Idempotent.
func (rel *relationships) BlockAccount(accountId, targetActorId int64) error {

	actorIds, err := rel.repo.GetActorIdsForAccount(accountId)
	if err != nil {
		return err
	}
	isNew, err := rel.repo.ApplyAccountBlock(accountId, actorIds, targetActorId, time.Now().UTC())
	if err != nil {
		return err
	}
	if isNew {
		rel.logger.Infof("Account %d blocked actor %d", accountId, targetActorId)
		rel.metrics.BlockApplied()
		rel.updateFollowGauges()
	}
	return nil
}

func (rel *relationships) Mute(accountId, targetActorId int64) error {
	_, err := rel.repo.AddMuteEdgeIfNew(accountId, targetActorId, time.Now().UTC())
	return err
}

func (rel *relationships) Unmute(accountId, targetActorId int64) error {
	return rel.repo.DeleteMuteEdge(accountId, targetActorId)
}

func (rel *relationships) AddFilter(rule *dal.FilterRule) (int64, error) {

	if !rule.Forever && rule.DurationSec <= 0 {
		return 0, fmt.Errorf("%w: non-forever filter rule needs a duration", ErrRelationshipConflict)
	}
	if rule.Query == "" {
		return 0, fmt.Errorf("%w: filter rule needs a query", ErrRelationshipConflict)
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	return rel.repo.AddFilterRule(rule)
}

func (rel *relationships) RemoveFilter(accountId, ruleId int64) error {
	return rel.repo.DeleteFilterRule(accountId, ruleId)
}

// ActiveFilters applies lazy expiry: expired non-forever rules are treated
// as absent even before the sweep removes them.
func (rel *relationships) ActiveFilters(accountId int64, now time.Time) ([]*dal.FilterRule, error) {

	rules, err := rel.repo.GetFilterRules(accountId)
	if err != nil {
		return nil, err
	}
	res := make([]*dal.FilterRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Expired(now) {
			continue
		}
		res = append(res, rule)
	}
	return res, nil
}

func (rel *relationships) updateFollowGauges() {
	if approved, err := rel.repo.CountFollowEdges(dal.FollowApproved); err == nil {
		rel.metrics.ApprovedFollowCount(approved)
	}
	if pending, err := rel.repo.CountFollowEdges(dal.FollowPending); err == nil {
		rel.metrics.PendingFollowCount(pending)
	}
}

func (rel *relationships) filterSweepLoop() {

	sweepMinutes := rel.cfg.FilterSweepMinutes
	if sweepMinutes == 0 {
		sweepMinutes = defaultFilterSweepMinutes
	}
	ticker := time.NewTicker(time.Duration(sweepMinutes) * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		count, err := rel.repo.DeleteExpiredFilterRules(time.Now().UTC())
		if err != nil {
			rel.logger.Warnf("Failed to sweep expired filter rules: %v", err)
			continue
		}
		if count != 0 {
			rel.logger.Debugf("Swept %d expired filter rules", count)
		}
	}
}
