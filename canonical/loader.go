package canonical

import (
	"context"
	"time"

	"github.com/onionoriginals/originals/errors"
)

// DocumentLoader resolves a JSON-LD context URI to its document. The
// bundled table (contexts.go) is always tried first; NetworkFetch, when
// non-nil, is the fallback and is subject to a 5-second timeout (§9).
type DocumentLoader struct {
	NetworkFetch func(ctx context.Context, uri string) (string, error)
}

// NewDocumentLoader returns a loader whose fast path is the embedded table.
// fetch may be nil, in which case unknown contexts always fail closed.
func NewDocumentLoader(fetch func(ctx context.Context, uri string) (string, error)) *DocumentLoader {
	return &DocumentLoader{NetworkFetch: fetch}
}

// Load resolves uri, consulting the embedded table before any network call.
func (l *DocumentLoader) Load(ctx context.Context, uri string) (string, error) {
	if doc, ok := WellKnownContexts[uri]; ok {
		return doc, nil
	}

	if l.NetworkFetch == nil {
		return "", errors.New(errors.ERR_CANONICALIZATION_ERROR, "unknown context %q and network fetch is disabled", uri)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc, err := l.NetworkFetch(fetchCtx, uri)
	if err != nil {
		return "", errors.New(errors.ERR_CANONICALIZATION_ERROR, "failed to fetch context %q", uri, err)
	}
	return doc, nil
}
