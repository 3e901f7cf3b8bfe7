// Package state holds the client-side state stores: a snapshot of cached
// results plus loading and error flags, changed only through actions and
// observable through subscriptions.
//
// Every action follows the same transitions:
//
//	Loading=true, Error=""            on start
//	results updated, Loading=false    on success
//	Error=<message>, Loading=false    on failure, cached results kept
package state

import "sync"

// observable guards a snapshot and notifies subscribers after each change.
// Subscribers run synchronously, outside the lock, in subscription order.
type observable[S any] struct {
	mu     sync.RWMutex
	state  S
	subs   []subscriber[S]
	nextID int
	clone  func(S) S
}

type subscriber[S any] struct {
	id int
	fn func(S)
}

func newObservable[S any](initial S, clone func(S) S) *observable[S] {
	return &observable[S]{state: initial, clone: clone}
}

func (o *observable[S]) get() S {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.clone(o.state)
}

func (o *observable[S]) update(fn func(*S)) {
	o.mu.Lock()
	fn(&o.state)
	snapshot := o.clone(o.state)
	subs := make([]subscriber[S], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
}

func (o *observable[S]) subscribe(fn func(S)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[S]{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}
