// SPDX-License-Identifier: MIT
//
// File: identity.go
// Role: Identity type, the Identifiable capability and the single resolver entry point.

package identity

import "strconv"

// ID is the identity of one logical state within a graph instance.
type ID = uint64

// Identifiable is the capability every graph state must provide.
//
// UniqueID must be stable for the lifetime of the state inside a graph:
// two states that return the same ID are the same vertex.
type Identifiable interface {
	UniqueID() ID
}

// Of returns the identity of s.
//
// It is a pure dispatch: value, pointer and Ref states all answer through
// their own UniqueID method, never through an alternate hash.
//
// Complexity: O(1) plus the cost of the accessor.
func Of[S Identifiable](s S) ID {
	return s.UniqueID()
}

// Key is a state that carries only its identity.
type Key ID

// UniqueID implements Identifiable.
func (k Key) UniqueID() ID { return ID(k) }

// String renders the key in base 10.
func (k Key) String() string { return strconv.FormatUint(uint64(k), 10) }
