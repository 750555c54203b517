// Package imagecache resolves image references found in a rendered memo.
//
// References carry one of two pseudo-schemes. image://<filename> names a
// persisted attachment fetched through the storage collaborator; the result
// is memoized in a filename-keyed, append-only cache so repeated or
// concurrent references never trigger a second fetch. cache://<key> names
// an ephemeral paste/drop buffer entry that exists only in memory until the
// memo is saved.
//
// Resolution is one-shot: the first lookup reports Pending and issues a
// single asynchronous fetch; an update callback lets the consumer re-render
// once the bytes arrive. A failed fetch is recorded, logged, and rendered
// as a placeholder; it never aborts rendering of the rest of the document.
package imagecache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/notefold/notedown/internal/logging"
)

// Store is the storage collaborator for persisted attachments.
type Store interface {
	// Get returns the bytes of a stored attachment.
	Get(ctx context.Context, filename string) ([]byte, error)

	// Save persists attachment bytes under a name derived from
	// suggestedName and returns the final filename.
	Save(ctx context.Context, data []byte, suggestedName string) (string, error)
}

// State describes where a reference is in its resolution lifecycle.
type State uint8

// Resolution states. An entry moves Pending -> Ready or Pending -> Failed
// exactly once and never changes again within a session.
const (
	StatePending State = iota
	StateReady
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Image is a point-in-time snapshot of one reference's resolution.
type Image struct {
	State State
	Data  []byte
	Err   error
}

// UpdateFunc is called after an asynchronous fetch settles, with the
// original reference. Consumers typically trigger a re-render.
type UpdateFunc func(ref string)

// Resolver memoizes attachment fetches by filename.
type Resolver struct {
	store     Store
	ephemeral *Ephemeral
	logger    *log.Logger
	onUpdate  UpdateFunc

	mu      sync.Mutex
	entries map[string]*Image
	pending sync.WaitGroup
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEphemeral attaches the paste/drop buffer consulted for cache:// keys.
func WithEphemeral(e *Ephemeral) Option {
	return func(r *Resolver) { r.ephemeral = e }
}

// WithLogger sets the logger used for resolution failures.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithUpdateFunc sets the callback invoked when an async fetch settles.
func WithUpdateFunc(fn UpdateFunc) Option {
	return func(r *Resolver) { r.onUpdate = fn }
}

// NewResolver creates a resolver backed by the given store.
func NewResolver(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:   store,
		logger:  logging.Default(),
		entries: make(map[string]*Image),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the current resolution snapshot for a scheme-qualified
// reference. The first lookup of an image:// filename starts a single
// background fetch and reports Pending; cache:// keys resolve immediately
// from the ephemeral buffer. Unknown schemes resolve as Failed.
func (r *Resolver) Lookup(ctx context.Context, ref string) Image {
	scheme, name, ok := SplitRef(ref)
	if !ok {
		return Image{State: StateFailed, Err: fmt.Errorf("malformed image reference %q", ref)}
	}

	switch scheme {
	case "cache":
		if r.ephemeral != nil {
			if data, found := r.ephemeral.Get(name); found {
				return Image{State: StateReady, Data: data}
			}
		}
		return Image{State: StateFailed, Err: fmt.Errorf("no pasted image for key %q", name)}

	case "image":
		return r.lookupStored(ctx, ref, name)

	default:
		return Image{State: StateFailed, Err: fmt.Errorf("unsupported image scheme %q", scheme)}
	}
}

// lookupStored returns the memoized entry for a filename, starting the
// one-shot fetch on first reference.
func (r *Resolver) lookupStored(ctx context.Context, ref, filename string) Image {
	r.mu.Lock()
	if entry, found := r.entries[filename]; found {
		snapshot := *entry
		r.mu.Unlock()
		return snapshot
	}

	entry := &Image{State: StatePending}
	r.entries[filename] = entry
	r.pending.Add(1)
	r.mu.Unlock()

	go r.fetch(ctx, ref, filename)

	return Image{State: StatePending}
}

// fetch performs the single store lookup for a filename and settles its
// cache entry.
func (r *Resolver) fetch(ctx context.Context, ref, filename string) {
	defer r.pending.Done()

	data, err := r.store.Get(ctx, filename)

	r.mu.Lock()
	entry := r.entries[filename]
	if err != nil {
		entry.State = StateFailed
		entry.Err = err
	} else {
		entry.State = StateReady
		entry.Data = data
	}
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("image fetch failed",
			logging.FieldFilename, filename,
			logging.FieldError, err,
		)
	}

	if r.onUpdate != nil {
		r.onUpdate(ref)
	}
}

// Wait blocks until every in-flight fetch has settled or the context is
// cancelled. Synchronous consumers call it between Lookup and final render.
func (r *Resolver) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for image fetches: %w", ctx.Err())
	}
}

// SplitRef splits a scheme-qualified reference like image://photo.png into
// its scheme and name parts.
func SplitRef(ref string) (scheme, name string, ok bool) {
	scheme, name, found := strings.Cut(ref, "://")
	if !found || scheme == "" || name == "" {
		return "", "", false
	}
	return scheme, name, true
}
