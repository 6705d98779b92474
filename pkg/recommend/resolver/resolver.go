package resolver

import (
	"context"
	"log"
	"strings"
	"time"

	"conevibes-be/pkg/retrieval"
)

// Resolver turns the latest user turn into a single contextual text blob by
// querying the document store. Retrieval is best effort: a store failure or
// timeout degrades to an empty blob so the recommendation can still proceed
// on catalog and instructions alone.
type Resolver struct {
	store   retrieval.Store
	timeout time.Duration
	logger  *log.Logger
}

func NewResolver(store retrieval.Store, timeout time.Duration, logger *log.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// Resolve issues a retrieval query with the user's text verbatim and flattens
// the returned snippets into one blob. Empty input or an unavailable store
// both yield an empty blob, which is a valid outcome.
//
// Structured selections are NOT folded in here a second time: they reach the
// model only through the synthesized text the selection tracker already wrote
// into the user turn (see Fragment).
func (r *Resolver) Resolve(ctx context.Context, latestUserText string) string {
	if strings.TrimSpace(latestUserText) == "" {
		return ""
	}

	queryCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	snippets, err := r.store.Query(queryCtx, latestUserText)
	if err != nil {
		r.logger.Printf("[WARN] Retrieval unavailable, degrading to empty context: %v", err)
		return ""
	}

	return Flatten(snippets)
}

// Flatten joins snippets in store order with no further ranking.
func Flatten(snippets []retrieval.Snippet) string {
	parts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		if s.Content == "" {
			continue
		}
		parts = append(parts, s.Content)
	}
	return strings.Join(parts, "\n")
}

// Fragment renders structured selections as the canonical context text:
// "Weather: <tag> Activity: <tag>", present fragments joined by a single
// space, trailing whitespace trimmed.
func Fragment(weather, activity string) string {
	var fragment strings.Builder
	if weather != "" {
		fragment.WriteString("Weather: ")
		fragment.WriteString(weather)
		fragment.WriteString(" ")
	}
	if activity != "" {
		fragment.WriteString("Activity: ")
		fragment.WriteString(activity)
	}
	return strings.TrimSpace(fragment.String())
}
