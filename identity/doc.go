// Package identity resolves the 64-bit identity of caller-defined states.
//
// A state joins a graph only through its identity. Any type that exposes
//
//	UniqueID() identity.ID
//
// satisfies Identifiable and can be used as the state parameter of
// core.Graph. The check is made by the compiler: a state type without
// the accessor does not build.
//
// Representation modes:
//
//   - by value:     core.Graph[T]              (vertex stores a copy of T)
//   - by pointer:   core.Graph[*T]             (vertex stores the caller's pointer)
//   - by reference: core.Graph[identity.Ref[T]] (vertex stores a read-only handle)
//
// All three resolve through Of, which calls the state's own accessor and
// nothing else, so the same logical state yields the same ID in every mode.
//
// Key is a ready-made state for callers whose states are nothing but
// their identity.
package identity
