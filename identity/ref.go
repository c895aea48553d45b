// SPDX-License-Identifier: MIT
//
// File: ref.go
// Role: Reference adapter: a read-only handle over caller-owned state.

package identity

// Ref is a read-only handle to a caller-owned T.
//
// A graph built over Ref[T] never copies T; the caller keeps ownership and
// must keep the pointee alive (and its identity unchanged) while the graph
// references it. The zero Ref is invalid; calling UniqueID on it panics.
//
// T must carry a value-receiver accessor. Types with a pointer-receiver
// UniqueID use pointer mode (Graph[*T]) instead.
type Ref[T Identifiable] struct {
	ptr *T
}

// RefTo wraps p in a Ref. p must not be nil.
func RefTo[T Identifiable](p *T) Ref[T] {
	if p == nil {
		panic("identity: RefTo(nil)")
	}

	return Ref[T]{ptr: p}
}

// UniqueID implements Identifiable by delegating to the referenced state.
func (r Ref[T]) UniqueID() ID {
	return (*r.ptr).UniqueID()
}

// Value returns a copy of the referenced state.
func (r Ref[T]) Value() T { return *r.ptr }

// Pointer returns the underlying pointer. Callers must not use it to
// change the state's identity.
func (r Ref[T]) Pointer() *T { return r.ptr }

// Valid reports whether r was built by RefTo.
func (r Ref[T]) Valid() bool { return r.ptr != nil }
