// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"slices"
	"sync"
)

// Observable is a value cell that notifies subscribers on every change.
//
// Subscribers are invoked outside the internal lock, in subscription order,
// with the value that was just stored.
type Observable[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewObservable creates an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores v and notifies subscribers.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	subs := slices.Clone(o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Update applies fn to the current value atomically and notifies subscribers
// with the result.
func (o *Observable[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	o.value = fn(o.value)
	v := o.value
	subs := slices.Clone(o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
	return v
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			o.subs = slices.DeleteFunc(o.subs, func(s subscriber[T]) bool { return s.id == id })
		})
	}
}

func (o *Observable[T]) subscribers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}
