package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks lamia/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartDiscoveryRequestOut(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	ServiceStarted()
	BlockApplied()
	FilterMatched(outcome string)
	ApprovedFollowCount(count int)
	PendingFollowCount(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                  *shared.Config
	apiRequestsIn        *prometheus.HistogramVec
	discoveryRequestsOut *prometheus.HistogramVec
	apubRequestsOut      *prometheus.HistogramVec
	serviceStarted       prometheus.Counter
	blocksApplied        prometheus.Counter
	filtersMatched       *prometheus.CounterVec
	approvedFollows      prometheus.Gauge
	pendingFollows       prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.discoveryRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "discovery_requests_out_duration",
		Help: "Duration in seconds of webfinger discovery requests made.",
	}, []string{"label"})
	prometheus.Register(res.discoveryRequestsOut)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.blocksApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blocks_applied",
		Help: "Number of account-level blocks applied",
	})
	prometheus.Register(res.blocksApplied)

	res.filtersMatched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "filters_matched",
		Help: "Number of filter rule matches by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.filtersMatched)

	res.approvedFollows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "approved_follow_count",
		Help: "Number of follow edges in approved state",
	})
	prometheus.Register(res.approvedFollows)

	res.pendingFollows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pending_follow_count",
		Help: "Number of follow edges awaiting review",
	})
	prometheus.Register(res.pendingFollows)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartDiscoveryRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.discoveryRequestsOut}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) BlockApplied() {
	m.blocksApplied.Add(1)
}

func (m *metrics) FilterMatched(outcome string) {
	m.filtersMatched.WithLabelValues(outcome).Add(1)
}

func (m *metrics) ApprovedFollowCount(count int) {
	m.approvedFollows.Set(float64(count))
}

func (m *metrics) PendingFollowCount(count int) {
	m.pendingFollows.Set(float64(count))
}
