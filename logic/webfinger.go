package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/time/rate"
	"lamia/dto"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_http_client.go -package mocks lamia/logic IHttpClient
//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_resolver.go -package mocks lamia/logic IResolver

const webfingerPath = "/.well-known/webfinger"
const webfingerAccept = "application/jrd+json, application/json"

// Relation types carrying the canonical actor link in webfinger responses,
// in order of preference.
var actorLinkRels = []string{"self", "http://webfinger.net/rel/profile-page"}

var rePort = regexp.MustCompile(`:\d+`)

// Normalize turns a user-supplied identifier (acct:user@host, URL, bare
// handle) into the webfinger resource id and the https discovery base of its
// host. Pure; no I/O. A rough, heuristic take on the OpenID discovery
// normalization steps. Ports are dropped because we never discover over
// plain http anyway; host case is preserved as-is.
func Normalize(identifier string) (dto.ResolvedIdentifier, error) {

	id := identifier

	// Drop the acct: portion
	// examples - acct:lamia@lamia.social OR acct:lamia.social/@lamia
	id = strings.TrimPrefix(id, "acct:")

	if id == "" {
		return dto.ResolvedIdentifier{}, fmt.Errorf("%w: empty identifier", ErrMalformedIdentifier)
	}

	// Drop the port portion: discovery is forced to https regardless
	if strings.Contains(strings.ReplaceAll(id, "://", ""), ":") {
		id = rePort.ReplaceAllString(id, "")
	}

	// If the id is an address, we're done here: strip the scheme for the
	// resource, keep host only for the base
	// examples - http://lamia.social/users/lamia OR http://lamia.social/lamia
	if strings.HasPrefix(id, "http") {
		parsed, err := url.Parse(id)
		if err != nil || parsed.Host == "" {
			return dto.ResolvedIdentifier{}, fmt.Errorf("%w: no host in '%s'", ErrMalformedIdentifier, identifier)
		}
		resource := strings.ReplaceAll(id, "https://", "")
		resource = strings.ReplaceAll(resource, "http://", "")
		return dto.ResolvedIdentifier{
			ResourceId:       resource,
			DiscoveryBaseUrl: "https://" + parsed.Host,
		}, nil
	}

	// Email address-style: split on the first @. The '/@' check keeps
	// path-style handles (lamia.social/@lamia) out of this branch.
	// examples - lamia@lamia.social
	if strings.Contains(id, "@") && !strings.Contains(id, "/@") {
		parts := strings.SplitN(id, "@", 2)
		if parts[1] == "" {
			return dto.ResolvedIdentifier{}, fmt.Errorf("%w: no host in '%s'", ErrMalformedIdentifier, identifier)
		}
		return dto.ResolvedIdentifier{
			ResourceId:       id,
			DiscoveryBaseUrl: "https://" + parts[1],
		}, nil
	}

	// Everything else: assume a url sans scheme
	parsed, err := url.Parse("https://" + id)
	if err != nil || parsed.Host == "" {
		return dto.ResolvedIdentifier{}, fmt.Errorf("%w: no host in '%s'", ErrMalformedIdentifier, identifier)
	}
	return dto.ResolvedIdentifier{
		ResourceId:       id,
		DiscoveryBaseUrl: "https://" + parsed.Host,
	}, nil
}

// IHttpClient is what the resolver needs from a transport; *http.Client
// satisfies it. Injected so tests can substitute the wire.
type IHttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// IResolver is the webfinger discovery client. It performs no caching and
// never writes; safe to call repeatedly.
type IResolver interface {
	Resolve(ctx context.Context, identifier string) (*dto.DiscoveryRecord, error)
}

type resolver struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    IHttpClient
	metrics   IMetrics
	muLim     sync.Mutex
	limiters  map[string]*rate.Limiter
}

func NewResolver(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	client IHttpClient,
	metrics IMetrics,
) IResolver {
	return &resolver{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		client:    client,
		metrics:   metrics,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (r *resolver) hostLimiter(host string) *rate.Limiter {
	r.muLim.Lock()
	defer r.muLim.Unlock()
	lim, ok := r.limiters[host]
	if !ok {
		rps := r.cfg.DiscoveryPerHostRps
		if rps <= 0 {
			rps = 1
		}
		lim = rate.NewLimiter(rate.Limit(rps), 1)
		r.limiters[host] = lim
	}
	return lim
}

func (r *resolver) Resolve(ctx context.Context, identifier string) (*dto.DiscoveryRecord, error) {

	resolved, err := Normalize(identifier)
	if err != nil {
		return nil, err
	}

	obs := r.metrics.StartDiscoveryRequestOut("webfinger")
	defer obs.Finish()

	host := strings.TrimPrefix(resolved.DiscoveryBaseUrl, "https://")
	if err = r.hostLimiter(host).Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrDiscoveryTimeout, identifier)
	}

	wfUrl := resolved.DiscoveryBaseUrl + webfingerPath + "?resource=" + url.QueryEscape(resolved.ResourceId)
	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", wfUrl, nil); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrMalformedIdentifier, identifier, err)
	}
	req.Header.Set("Accept", webfingerAccept)
	r.userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = r.client.Do(req); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: '%s'", ErrDiscoveryTimeout, identifier)
		}
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryUnreachable, identifier, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: '%s': got status %d", ErrDiscoveryNotFound, identifier, resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: '%s'", ErrDiscoveryTimeout, identifier)
		}
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryUnreachable, identifier, err)
	}

	var wf dto.WebfingerResp
	if err = json.Unmarshal(bodyBytes, &wf); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrDiscoveryMalformedResponse, identifier, err)
	}
	if wf.Subject == "" {
		return nil, fmt.Errorf("%w: '%s': descriptor has no subject", ErrDiscoveryMalformedResponse, identifier)
	}

	record := dto.DiscoveryRecord{
		Subject: wf.Subject,
		Links:   make(map[string]string),
	}
	for _, link := range wf.Links {
		if link.Href == "" {
			continue
		}
		if _, seen := record.Links[link.Rel]; !seen {
			record.Links[link.Rel] = link.Href
		}
	}
	for _, rel := range actorLinkRels {
		if href, ok := record.Links[rel]; ok {
			record.ActorUri = href
			break
		}
	}
	if record.ActorUri == "" {
		return nil, fmt.Errorf("%w: '%s': descriptor has no actor link", ErrDiscoveryMalformedResponse, identifier)
	}

	r.logger.Debugf("Resolved '%s' to %s", identifier, record.ActorUri)
	return &record, nil
}
