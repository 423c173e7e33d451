package recordfeed

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

const subscriberBuffer = 16

// Feed fans newly confirmed transactions out to live in-memory subscribers.
// Delivery is best-effort: a subscriber that falls behind misses records and
// is expected to re-read from the repository, which stays the source of
// truth. Feed implements usecase.RecordPublisher.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan *domain.Transaction
}

// New creates an empty Feed.
func New() *Feed {
	return &Feed{
		subs: make(map[int]chan *domain.Transaction),
	}
}

// Subscribe registers a subscriber. The returned cancel function must be
// called to release the subscription; the channel is closed afterwards.
func (f *Feed) Subscribe() (<-chan *domain.Transaction, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	ch := make(chan *domain.Transaction, subscriberBuffer)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers a transaction to all current subscribers without
// blocking. Full subscriber buffers drop the record.
func (f *Feed) Publish(tx *domain.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- tx:
		default:
		}
	}
}
