// Package dfs implements depth-first traversal, topological sort and cycle
// queries over a core.Graph of any state type.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting, edge filtering and forest mode.
//   - TopologicalSort: linear order of a DAG, ErrCycleDetected otherwise.
//   - FindCycle / HasCycle: report one directed cycle, rotated to start at
//     its smallest identity.
//
// Search metadata:
//
// Every entry point calls Graph.ResetVertices once and then records its
// progress on each vertex's core.SearchInfo:
//
//   - DFS: Checked = visited, G = depth, Parent/HasParent = tree edge.
//   - TopologicalSort, FindCycle: InOpenList = Gray (on stack),
//     Checked = Black (finished).
//
// The topology is never changed. Runs on the same graph must not overlap.
//
// Determinism:
//
// Roots are taken in ascending identity order and edges in insertion order,
// so results are stable for a given build sequence.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start state has no vertex
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        walk canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
