// Package dfs implements depth‑first traversal and bounded path enumeration
// on a core.Graph rail network.
//
// What:
//
//   - DFS: reachability from a start station, with discovery depth, parent
//     links and post-order. Supports:
//   - Pre‑order hook
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - PathsWithMaxStops / PathsWithExactStops / PathsLessThanDistance:
//     enumerate every walk (stations may repeat) from a source to a
//     destination under a hop-count or cumulative-distance bound, by
//     backtracking DFS. Supports:
//   - OnPath streaming hook
//   - MaxResults cap (ErrResultLimit with the truncated result)
//   - Cancellation via context.Context
//
// Why:
//   - Answer trip questions such as "how many trips from C back to C take at
//     most 3 stops" or "which trips from C to C are shorter than 30".
//
// Complexity:
//
//   - DFS:          Time O(V+E), Memory O(V)
//   - Enumerators:  Time O(d^k) for out-degree d and bound depth k,
//     Memory O(k) plus the results
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  DFS start station not in graph
//   - ErrStationNotFound      enumeration source or destination not in graph
//   - ErrNegativeBound        negative stop count or distance
//   - ErrResultLimit          MaxResults reached
//   - context.Canceled        canceled via context
//   - hook errors             propagated from OnVisit or OnPath
//
// Every failing enumerator still returns a non-nil (possibly empty) slice.
package dfs
