package fetch

import (
	"context"
	"log"
	"sync"

	"github.com/studybuddy/studybuddy/internal/model"
)

// Loader fetches the value of one key
type Loader[K comparable, T any] func(ctx context.Context, key K) (T, error)

// State is the observable state of one key
type State[K comparable, T any] struct {
	Key    K
	Status model.FetchStatus
	Value  T
	Err    error
}

// Loaded reports whether the value is usable
func (s State[K, T]) Loaded() bool {
	return s.Status == model.FetchStatusLoaded
}

type entry[K comparable, T any] struct {
	state    State[K, T]
	token    uint64
	hasValue bool // set by the first successful load, survives later failures
}

// Resource holds the fetch state of a keyed remote resource
type Resource[K comparable, T any] struct {
	name       string
	load       Loader[K, T]
	entries    map[K]*entry[K, T]
	current    K
	hasCurrent bool
	mutex      sync.RWMutex
	onUpdate   func(State[K, T]) // callback for UI updates
}

// New creates a resource named for logging
func New[K comparable, T any](name string, load Loader[K, T]) *Resource[K, T] {
	return &Resource[K, T]{
		name:    name,
		load:    load,
		entries: make(map[K]*entry[K, T]),
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (r *Resource[K, T]) SetUpdateCallback(callback func(State[K, T])) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.onUpdate = callback
}

// Attach makes key the current key and loads it
func (r *Resource[K, T]) Attach(ctx context.Context, key K) State[K, T] {
	r.mutex.Lock()
	r.current = key
	r.hasCurrent = true
	r.mutex.Unlock()
	return r.Reload(ctx, key)
}

// Select makes key the current key, loading it only when no value is cached
func (r *Resource[K, T]) Select(ctx context.Context, key K) State[K, T] {
	r.mutex.Lock()
	r.current = key
	r.hasCurrent = true
	e, ok := r.entries[key]
	if ok && e.state.Status == model.FetchStatusLoaded {
		st := e.state
		callback := r.onUpdate
		r.mutex.Unlock()
		if callback != nil {
			callback(st)
		}
		return st
	}
	r.mutex.Unlock()
	return r.Reload(ctx, key)
}

// Reload fetches key again. It blocks until the loader returns and reports
// the state of key afterwards. A completion that has been superseded by a
// later Reload of the same key is discarded.
func (r *Resource[K, T]) Reload(ctx context.Context, key K) State[K, T] {
	r.mutex.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry[K, T]{state: State[K, T]{Key: key}}
		r.entries[key] = e
	}
	e.token++
	token := e.token
	e.state.Status = model.FetchStatusLoading
	e.state.Err = nil
	loading := e.state
	r.mutex.Unlock()

	r.notify(loading)

	value, err := r.load(ctx, key)

	r.mutex.Lock()
	if e.token != token {
		latest, latestToken := e.state, e.token
		r.mutex.Unlock()
		log.Printf("Dropping stale %s response for %v (token %d, latest %d)", r.name, key, token, latestToken)
		return latest
	}
	if err != nil {
		e.state.Status = model.FetchStatusError
		e.state.Err = err
		log.Printf("Failed to load %s for %v: %v", r.name, key, err)
	} else {
		e.state.Status = model.FetchStatusLoaded
		e.state.Value = value
		e.hasValue = true
	}
	settled := e.state
	r.mutex.Unlock()

	r.notify(settled)
	return settled
}

// Start runs Reload on a new goroutine
func (r *Resource[K, T]) Start(ctx context.Context, key K) {
	go r.Reload(ctx, key)
}

// Update changes the value of key in place. A value kept through a failed
// or pending reload can be updated too; the status is left unchanged. It
// reports false when key has never loaded.
func (r *Resource[K, T]) Update(key K, mutate func(*T)) bool {
	r.mutex.Lock()
	e, ok := r.entries[key]
	if !ok || !e.hasValue {
		r.mutex.Unlock()
		return false
	}
	mutate(&e.state.Value)
	st := e.state
	r.mutex.Unlock()

	r.notify(st)
	return true
}

// State returns the state of the current key. Before any key is attached
// the status is idle.
func (r *Resource[K, T]) State() State[K, T] {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if !r.hasCurrent {
		return State[K, T]{Status: model.FetchStatusIdle}
	}
	return r.stateLocked(r.current)
}

// StateOf returns the state of any key
func (r *Resource[K, T]) StateOf(key K) State[K, T] {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.stateLocked(key)
}

func (r *Resource[K, T]) stateLocked(key K) State[K, T] {
	if e, ok := r.entries[key]; ok {
		return e.state
	}
	return State[K, T]{Key: key, Status: model.FetchStatusIdle}
}

// Current returns the current key and whether one is attached
func (r *Resource[K, T]) Current() (K, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.current, r.hasCurrent
}

// IsCurrent reports whether key is the current key
func (r *Resource[K, T]) IsCurrent(key K) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.hasCurrent && r.current == key
}

func (r *Resource[K, T]) notify(st State[K, T]) {
	r.mutex.RLock()
	callback := r.onUpdate
	r.mutex.RUnlock()
	if callback != nil {
		callback(st)
	}
}
