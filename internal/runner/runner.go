// Package runner sequences one diagnostic pass: resolve the egress path,
// fetch the endpoint catalog, probe every endpoint, and hand the collected
// results to the report stage.
package runner

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/catalog"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/config"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/egress"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/probe"
)

// URLResult ties one probe outcome back to its originating URL.
type URLResult struct {
	URL     string
	Outcome model.ProbeOutcome
}

// GroupResult holds every probe result of one endpoint group, in the
// group's own URL order regardless of probe completion order.
type GroupResult struct {
	Group   model.EndpointGroup
	Results []URLResult
}

// Run is the aggregate of one full pass.
type Run struct {
	Egress      model.EgressPath
	Groups      []GroupResult
	AnyFailures bool
}

type Runner struct {
	cfg     *config.Config
	fetcher *catalog.Fetcher
	prober  *probe.Prober
}

func New(cfg *config.Config) *Runner {
	fetcher := catalog.NewFetcher(cfg.FetchTimeout)
	fetcher.BaseURL = cfg.EndpointsURL
	return &Runner{
		cfg:     cfg,
		fetcher: fetcher,
		prober:  probe.New(cfg.DialTimeout, cfg.HTTPTimeout),
	}
}

// Execute performs one diagnostic pass. A catalog fetch failure aborts the
// run before any probing; individual probe failures never do.
func (r *Runner) Execute(ctx context.Context) (*Run, error) {
	path := egress.Resolve()
	if path.IsProxied() {
		slog.Info("outbound traffic is proxied", "proxy", path.ProxyURL)
	} else {
		slog.Info("outbound traffic is direct")
	}

	start := time.Now()
	groups, err := r.fetcher.Fetch(ctx, r.cfg.ServiceArea)
	if err != nil {
		return nil, err
	}
	slog.Debug("catalog fetched", "groups", len(groups), "duration", time.Since(start))

	run := &Run{Egress: path, Groups: r.probeAll(ctx, groups, path)}
	for _, g := range run.Groups {
		for _, res := range g.Results {
			if !res.Outcome.Success {
				run.AnyFailures = true
			}
		}
	}
	return run, nil
}

// probeAll tests every (group, url) pair. Workers are bounded by a
// semaphore and probe starts by a rate limiter; results land in
// preallocated slots so report order always matches catalog order.
func (r *Runner) probeAll(ctx context.Context, groups []model.EndpointGroup, path model.EgressPath) []GroupResult {
	workers := int64(r.cfg.Workers)
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(workers)
	limiter := rate.NewLimiter(rate.Limit(r.cfg.ProbeRate), 1)

	results := make([]GroupResult, len(groups))
	for gi, g := range groups {
		results[gi] = GroupResult{Group: g, Results: make([]URLResult, len(g.URLs))}
	}

	for gi, g := range groups {
		for ui, u := range g.URLs {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[gi].Results[ui] = URLResult{URL: u, Outcome: model.Failed(model.ReasonUnclassified, err.Error())}
				continue
			}
			go func(gi, ui int, u string) {
				defer sem.Release(1)
				if err := limiter.Wait(ctx); err != nil {
					results[gi].Results[ui] = URLResult{URL: u, Outcome: model.Failed(model.ReasonUnclassified, err.Error())}
					return
				}
				results[gi].Results[ui] = URLResult{URL: u, Outcome: r.prober.Probe(ctx, u, path)}
			}(gi, ui, u)
		}
	}

	// Draining the semaphore waits for every in-flight probe.
	if err := sem.Acquire(ctx, workers); err == nil {
		sem.Release(workers)
	}
	return results
}
