package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"lamia/dal"
	"lamia/dto"
	"lamia/logic"
	"lamia/shared"
)

type apiHandlerGroup struct {
	cfg           *shared.Config
	logger        shared.ILogger
	metrics       logic.IMetrics
	directory     logic.IActorDirectory
	relationships logic.IRelationships
	visibility    logic.IVisibility
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	directory logic.IActorDirectory,
	relationships logic.IRelationships,
	visibility logic.IVisibility,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics,
		directory:     directory,
		relationships: relationships,
		visibility:    visibility,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/resolve", func(w http.ResponseWriter, r *http.Request) { hg.postResolve(w, r) }},
		{"POST", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.postFollows(w, r) }},
		{"POST", "/follows/approve", func(w http.ResponseWriter, r *http.Request) { hg.postFollowsApprove(w, r) }},
		{"POST", "/follows/reject", func(w http.ResponseWriter, r *http.Request) { hg.postFollowsReject(w, r) }},
		{"DELETE", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.deleteFollows(w, r) }},
		{"POST", "/blocks", func(w http.ResponseWriter, r *http.Request) { hg.postBlocks(w, r) }},
		{"POST", "/mutes", func(w http.ResponseWriter, r *http.Request) { hg.postMutes(w, r) }},
		{"DELETE", "/mutes", func(w http.ResponseWriter, r *http.Request) { hg.deleteMutes(w, r) }},
		{"POST", "/filters", func(w http.ResponseWriter, r *http.Request) { hg.postFilters(w, r) }},
		{"DELETE", "/filters/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteFilters(w, r) }},
		{"POST", "/visibility", func(w http.ResponseWriter, r *http.Request) { hg.postVisibility(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) parseBody(w http.ResponseWriter, r *http.Request, obj any) bool {
	body := readBody(hg.logger, w, r)
	if body == nil {
		return false
	}
	if err := json.Unmarshal(body, obj); err != nil {
		hg.logger.Warnf("Failed to parse request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return false
	}
	return true
}

func (hg *apiHandlerGroup) discoveryCtx(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(hg.cfg.DiscoveryTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (hg *apiHandlerGroup) postResolve(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("resolve")
	defer obs.Finish()

	var req dto.ResolveRequest
	if !hg.parseBody(w, r, &req) {
		return
	}

	resolved, err := hg.directory.ResolveIdentifier(req.Identifier)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	resp := dto.ResolveResponse{
		ResourceId:       resolved.ResourceId,
		DiscoveryBaseUrl: resolved.DiscoveryBaseUrl,
	}

	ctx, cancel := hg.discoveryCtx(r)
	defer cancel()
	record, err := hg.directory.Discover(ctx, req.Identifier)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	resp.Subject = record.Subject
	resp.ActorUri = record.ActorUri
	resp.Links = record.Links

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postFollows(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("follows")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.parseBody(w, r, &req) {
		return
	}

	status, err := hg.relationships.RequestFollow(req.SourceActorId, req.TargetActorId)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FollowResponse{Status: followStatusStr(status)})
}

func followStatusStr(status dal.FollowStatus) string {
	switch status {
	case dal.FollowPending:
		return "pending"
	case dal.FollowApproved:
		return "approved"
	case dal.FollowBlocked:
		return "blocked"
	}
	return "none"
}

func (hg *apiHandlerGroup) postFollowsApprove(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("follows_approve")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.ApproveFollow(req.SourceActorId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FollowResponse{Status: "approved"})
}

func (hg *apiHandlerGroup) postFollowsReject(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("follows_reject")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.RejectFollow(req.SourceActorId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FollowResponse{Status: "none"})
}

func (hg *apiHandlerGroup) deleteFollows(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("unfollow")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.Unfollow(req.SourceActorId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FollowResponse{Status: "none"})
}

func (hg *apiHandlerGroup) postBlocks(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("blocks")
	defer obs.Finish()

	var req dto.BlockRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.BlockAccount(req.AccountId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FollowResponse{Status: "blocked"})
}

func (hg *apiHandlerGroup) postMutes(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("mutes")
	defer obs.Finish()

	var req dto.MuteRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.Mute(req.AccountId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) deleteMutes(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("unmute")
	defer obs.Finish()

	var req dto.MuteRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	if err := hg.relationships.Unmute(req.AccountId, req.TargetActorId); err != nil {
		writeCoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postFilters(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("filters")
	defer obs.Finish()

	var req dto.FilterRequest
	if !hg.parseBody(w, r, &req) {
		return
	}

	rule := dal.FilterRule{
		AccountId: req.AccountId,
		Query:     req.Query,
		Hide:      req.Hide,
		Minimize:  req.Minimize,
		Forever:   req.Forever,
		CreatedAt: time.Now().UTC(),
	}
	if req.ScopeActorId != nil {
		rule.ScopeActorId = *req.ScopeActorId
	}
	if req.DurationSec != nil {
		rule.DurationSec = *req.DurationSec
	}

	id, err := hg.relationships.AddFilter(&rule)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, dto.FilterResponse{Id: id})
}

func (hg *apiHandlerGroup) deleteFilters(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("filters_delete")
	defer obs.Finish()

	ruleId, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	accountId, err := strconv.ParseInt(r.URL.Query().Get("account_id"), 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err = hg.relationships.RemoveFilter(accountId, ruleId); err != nil {
		writeCoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postVisibility(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartApiRequestIn("visibility")
	defer obs.Finish()

	var req dto.VisibilityRequest
	if !hg.parseBody(w, r, &req) {
		return
	}
	verdict, err := hg.visibility.Check(req.ViewerAccountId, &req.Content)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, verdict)
}
