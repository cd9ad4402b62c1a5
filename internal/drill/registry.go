package drill

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nihongo-drills/katsuyo"
)

// ErrUnknownChallenge is returned for an ID that was never issued, was
// already answered or has been evicted.
var ErrUnknownChallenge = errors.New("unknown challenge")

// Recorder persists answered challenges.
type Recorder interface {
	Record(ctx context.Context, r Result, at time.Time) error
}

// Registry holds open challenges. When more than maxOpen are open the
// oldest is evicted. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	verbs   []katsuyo.Verb
	maxOpen int
	open    map[uuid.UUID]*list.Element
	order   *list.List

	recorder Recorder
	now      func() time.Time
}

// NewRegistry creates a registry drawing challenges from verbs. recorder may be nil.
func NewRegistry(verbs []katsuyo.Verb, maxOpen int, recorder Recorder) *Registry {
	if maxOpen <= 0 {
		maxOpen = 1
	}
	return &Registry{
		verbs:    verbs,
		maxOpen:  maxOpen,
		open:     make(map[uuid.UUID]*list.Element),
		order:    list.New(),
		recorder: recorder,
		now:      time.Now,
	}
}

// New issues a random challenge.
func (r *Registry) New() Challenge {
	c := RandomChallenge(r.verbs, r.now())
	r.Add(c)
	return c
}

// Add registers an already built challenge.
func (r *Registry) Add(c Challenge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.open[c.ID]; ok {
		r.order.Remove(e)
	}
	r.open[c.ID] = r.order.PushBack(c)
	for r.order.Len() > r.maxOpen {
		oldest := r.order.Front()
		r.order.Remove(oldest)
		delete(r.open, oldest.Value.(Challenge).ID)
	}
}

// Get returns an open challenge without answering it.
func (r *Registry) Get(id uuid.UUID) (Challenge, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.open[id]
	if !ok {
		return Challenge{}, false
	}
	return e.Value.(Challenge), true
}

// Open returns the number of challenges awaiting an answer.
func (r *Registry) Open() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// Check answers challenge id, closing it, and records the attempt. The
// result is returned even when recording fails.
func (r *Registry) Check(ctx context.Context, id uuid.UUID, answer string) (Result, error) {
	r.mu.Lock()
	e, ok := r.open[id]
	if ok {
		r.order.Remove(e)
		delete(r.open, id)
	}
	r.mu.Unlock()
	if !ok {
		return Result{}, ErrUnknownChallenge
	}

	c := e.Value.(Challenge)
	res := Result{Challenge: c, Given: answer, Correct: Matches(answer, c.Answer)}
	if r.recorder != nil {
		if err := r.recorder.Record(ctx, res, r.now()); err != nil {
			return res, err
		}
	}
	return res, nil
}
