package kb

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Source hands out the process-wide knowledge base.
type Source interface {
	Get(ctx context.Context) (*KnowledgeBase, error)
}

// Static serves an already-loaded knowledge base.
type Static struct {
	kb *KnowledgeBase
}

func NewStatic(k *KnowledgeBase) *Static {
	return &Static{kb: k}
}

func (s *Static) Get(context.Context) (*KnowledgeBase, error) {
	return s.kb, nil
}

// Lazy loads the knowledge base on first use. Concurrent cold-start calls
// are single-flighted so the load function runs at most once on success.
type Lazy struct {
	load func() (*KnowledgeBase, error)

	group singleflight.Group

	mu     sync.RWMutex
	cached *KnowledgeBase
}

func NewLazy(load func() (*KnowledgeBase, error)) *Lazy {
	return &Lazy{load: load}
}

func (l *Lazy) Get(ctx context.Context) (*KnowledgeBase, error) {
	l.mu.RLock()
	cached := l.cached
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	result, err, _ := l.group.Do("kb", func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loaded, err := l.load()
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cached = loaded
		l.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*KnowledgeBase), nil
}
