// Package catalog retrieves the versioned list of network endpoints the
// enrollment workflow depends on, from the worldwide endpoint metadata
// service, and normalizes it into testable endpoint groups.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
)

// DefaultBaseURL is the worldwide instance of the endpoint metadata service.
const DefaultBaseURL = "https://endpoints.office.com"

// FetchError means the endpoint catalog could not be retrieved or parsed.
// The run cannot proceed without the catalog, so callers treat it as fatal.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("endpoint catalog fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// entry is the subset of the remote record shape the pipeline cares about.
type entry struct {
	ID          int      `json:"id"`
	ServiceArea string   `json:"serviceArea"`
	URLs        []string `json:"urls"`
}

// Fetcher pulls and normalizes the endpoint catalog.
type Fetcher struct {
	BaseURL string
	Client  *http.Client

	categories map[int]string
}

// NewFetcher returns a Fetcher against the worldwide service instance with
// the built-in category table.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		BaseURL:    DefaultBaseURL,
		Client:     &http.Client{Timeout: timeout},
		categories: categoryNames,
	}
}

// Fetch retrieves the full catalog and reduces it to the groups belonging to
// serviceArea. Every returned group has a category label and at least one
// deduplicated, wildcard-free hostname. Group order follows the remote
// service; URL order within a group is lexicographic so repeated runs print
// identically.
func (f *Fetcher) Fetch(ctx context.Context, serviceArea string) ([]model.EndpointGroup, error) {
	entries, err := f.retrieve(ctx, serviceArea)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	var groups []model.EndpointGroup
	for _, e := range entries {
		if e.ServiceArea != serviceArea || len(e.URLs) == 0 {
			continue
		}
		urls := normalizeURLs(e.URLs)
		if len(urls) == 0 {
			continue
		}
		groups = append(groups, model.EndpointGroup{
			ID:       e.ID,
			Category: f.categoryFor(e.ID),
			URLs:     urls,
		})
	}
	return groups, nil
}

// retrieve performs the remote call. A fresh client request id is generated
// per call; the service uses it for request tracing and it defeats
// intermediary caching.
func (f *Fetcher) retrieve(ctx context.Context, serviceArea string) ([]entry, error) {
	q := url.Values{}
	q.Set("clientrequestid", uuid.NewString())
	q.Set("ServiceAreas", serviceArea)

	reqURL := fmt.Sprintf("%s/endpoints/worldwide?%s", f.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return entries, nil
}

func (f *Fetcher) categoryFor(id int) string {
	if name, ok := f.categories[id]; ok {
		return name
	}
	return UncategorizedLabel
}

// normalizeURLs strips wildcard-subdomain prefixes, drops empties, and
// deduplicates. Output order is lexicographic for reproducible reports.
func normalizeURLs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var urls []string
	for _, u := range raw {
		u = StripWildcard(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// StripWildcard removes a leading "*." from a hostname pattern. A wildcard
// prefix denotes "any subdomain" and is not independently resolvable, so
// probes run against the bare registrable name. Idempotent.
func StripWildcard(host string) string {
	return strings.TrimPrefix(strings.TrimSpace(host), "*.")
}
