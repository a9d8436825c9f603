package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lamia/dto"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_fetcher.go -package mocks lamia/logic IActorFetcher

// IActorFetcher retrieves the ActivityPub actor document behind a discovered
// actor URI, to learn its inbox endpoints and public key.
type IActorFetcher interface {
	Fetch(ctx context.Context, actorUri string) (info *dto.ActorInfo, err error)
}

type actorFetcher struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
	client    IHttpClient
}

func NewActorFetcher(cfg *shared.Config, userAgent shared.IUserAgent, client IHttpClient) IActorFetcher {
	return &actorFetcher{cfg, userAgent, client}
}

func (af *actorFetcher) Fetch(ctx context.Context, actorUri string) (info *dto.ActorInfo, err error) {

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", actorUri, nil); err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/activity+json, application/json")
	af.userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = af.client.Do(req); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryUnreachable, actorUri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: '%s': got status %d", ErrDiscoveryNotFound, actorUri, resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryUnreachable, actorUri, err)
	}

	var obj dto.ActorInfo
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryMalformedResponse, actorUri, err)
	}
	if obj.Id == "" || obj.Inbox == "" {
		return nil, fmt.Errorf("%w: '%s': actor document missing id or inbox", ErrDiscoveryMalformedResponse, actorUri)
	}

	return &obj, nil
}
