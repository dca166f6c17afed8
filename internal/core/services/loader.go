package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// loadKey is the singleflight key; a loader only ever loads one index.
const loadKey = "index"

// IndexLoader fetches an index at most once per session.
//
// Concurrent Load calls share one in-flight fetch. A failed fetch leaves
// the corpus empty and the state NotLoaded, so the next Load retries.
type IndexLoader struct {
	source driven.IndexSource
	group  singleflight.Group

	// retry gates fetch attempts; nil retries on every demand.
	retry *rate.Limiter

	mu     sync.Mutex
	state  domain.LoadState
	corpus *domain.Corpus
}

// LoaderOption configures an IndexLoader.
type LoaderOption func(*IndexLoader)

// WithRetryInterval sets the minimum gap between fetch attempts.
// A zero or negative interval disables throttling.
func WithRetryInterval(d time.Duration) LoaderOption {
	return func(l *IndexLoader) {
		if d > 0 {
			l.retry = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// NewIndexLoader creates a loader for source.
func NewIndexLoader(source driven.IndexSource, opts ...LoaderOption) *IndexLoader {
	l := &IndexLoader{
		source: source,
		state:  domain.NotLoaded,
		corpus: domain.NewCorpus(nil),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the session corpus, fetching it on first demand.
//
// A caller whose ctx ends stops waiting, but the shared fetch carries on
// for the other callers. On failure the returned corpus is empty and the
// error wraps domain.ErrIndexLoad or domain.ErrRetryThrottled.
func (l *IndexLoader) Load(ctx context.Context) (*domain.Corpus, error) {
	l.mu.Lock()
	if l.state == domain.Loaded {
		c := l.corpus
		l.mu.Unlock()
		return c, nil
	}
	l.mu.Unlock()

	fetchCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(loadKey, func() (any, error) {
		return l.fetch(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return l.Corpus(), ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return l.Corpus(), res.Err
		}
		return res.Val.(*domain.Corpus), nil
	}
}

func (l *IndexLoader) fetch(ctx context.Context) (*domain.Corpus, error) {
	l.mu.Lock()
	if l.state == domain.Loaded {
		// An earlier flight finished between the fast-path check and DoChan.
		c := l.corpus
		l.mu.Unlock()
		return c, nil
	}
	if l.retry != nil && !l.retry.Allow() {
		l.mu.Unlock()
		logger.Debug("Index load throttled: %s", l.source.URI())
		return nil, domain.ErrRetryThrottled
	}
	l.state = domain.Loading
	l.mu.Unlock()

	logger.Section("Index Load")
	logger.Debug("Fetching index: %s", l.source.URI())
	start := time.Now()

	articles, err := l.source.Articles(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.state = domain.NotLoaded
		err = fmt.Errorf("%w: %s: %w", domain.ErrIndexLoad, l.source.URI(), err)
		logger.Warn("search index unavailable: %v", err)
		return nil, err
	}

	l.corpus = domain.NewCorpus(articles)
	l.state = domain.Loaded
	logger.Info("Loaded %d articles in %s", l.corpus.Len(), time.Since(start).Round(time.Millisecond))
	return l.corpus, nil
}

// State returns the current load state.
func (l *IndexLoader) State() domain.LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Corpus returns the loaded corpus, or an empty one before a successful load.
func (l *IndexLoader) Corpus() *domain.Corpus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.corpus
}

// SourceURI returns where the index is loaded from.
func (l *IndexLoader) SourceURI() string {
	return l.source.URI()
}
