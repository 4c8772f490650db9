package client

import (
	"context"
	"errors"
	"sync"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/catalog"
)

// ErrStale is returned for a catalog fetch that was overtaken by a newer one.
var ErrStale = errors.New("catalog response superseded by a newer request")

// Browser runs catalog fetches for an interactive filter panel. Only the
// latest fetch may deliver a page: starting a new one cancels the previous
// fetch and any answer it still produces is reported as ErrStale.
type Browser struct {
	client *Client

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewBrowser(client *Client) *Browser {
	return &Browser{client: client}
}

func (b *Browser) Fetch(ctx context.Context, state catalog.State) (*apiv1.WhiskyPage, error) {
	fetchCtx, cancel := context.WithCancel(ctx)

	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}

	b.generation++
	generation := b.generation
	b.cancel = cancel
	b.mu.Unlock()

	page, err := b.client.ListWhiskies(fetchCtx, state)

	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		return nil, ErrStale
	}

	b.cancel = nil

	cancel()

	if err != nil {
		return nil, err
	}

	return page, nil
}

// Generation is the number of fetches started so far.
func (b *Browser) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.generation
}
