package enrich

import "context"

// IEnricher defines the interface for the task metadata enrichment service.
// Implementations are safe for concurrent use. Any error returned here is
// treated as "no enrichment available" by callers, never surfaced upstream.
type IEnricher interface {
	Enrich(ctx context.Context, req Request) (*Response, error)
}
