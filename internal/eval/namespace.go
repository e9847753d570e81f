// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the lseq command evaluator.
package eval

import (
	"sort"
	"sync"

	"nickandperla.net/lseq/internal/value"
)

// Namespace maps variable names to reference-counted values. Each bound
// name holds one owner reference; binding the same value under two
// names makes it shared, which is what gates in-place list mutation.
type Namespace struct {
	mu    sync.RWMutex
	store map[string]*value.Obj
}

// NewNamespace creates a new empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		store: make(map[string]*value.Obj),
	}
}

// Get retrieves a value by name. The reference is borrowed; it returns
// nil if the name is unbound.
func (n *Namespace) Get(name string) *value.Obj {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.store[name]
}

// Set binds a value to a name, retaining it and releasing any value the
// name previously held.
func (n *Namespace) Set(name string, o *value.Obj) {
	n.mu.Lock()
	defer n.mu.Unlock()
	o.IncrRef()
	if old, ok := n.store[name]; ok && old != o {
		old.DecrRef()
	}
	n.store[name] = o
}

// Has returns true if the name is bound.
func (n *Namespace) Has(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.store[name]
	return ok
}

// Delete unbinds a name, releasing its reference.
func (n *Namespace) Delete(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if old, ok := n.store[name]; ok {
		old.DecrRef()
		delete(n.store, name)
	}
}

// Names returns all bound names in sorted order.
func (n *Namespace) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	names := make([]string, 0, len(n.store))
	for name := range n.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
