// Package search implements informed grid search: A* and Greedy Best-First.
//
// Overview:
//
//   - Both algorithms share one frontier: a min-heap ordered on the tuple
//     (priority, sequence), where sequence is a monotonically increasing
//     insertion counter. Equal priorities therefore pop first-in first-out,
//     which together with the grid's fixed neighbor order makes every run
//     deterministic and testable.
//   - A* uses priority = cost so far + Manhattan(cell, goal). It relaxes a
//     neighbor whenever it finds a strictly cheaper route, pushing a fresh
//     entry and leaving the old one in the heap ("lazy decrease-key"); stale
//     entries are skipped when popped.
//   - Greedy Best-First uses priority = Manhattan(cell, goal) alone. A cell is
//     pushed at most once, guarded by a visited set and a frontier membership
//     set keyed by coordinate.
//   - Both stop as soon as the goal is popped, or when the frontier runs dry.
//
// Visited order:
//
//   - Result.VisitedOrder appends the neighbor on every push, so an A*
//     relaxation that improves an already-discovered cell appears twice.
//     WithFirstTouchOrder records each cell only at first discovery.
//
// Path reconstruction:
//
//   - Reconstruct walks the predecessor map from goal back to start and
//     returns the cells start-exclusive, goal-inclusive. A cycle in the map is
//     a programming error and panics.
//
// Errors (sentinel):
//
//   - ErrNilGraph:         nil graph passed to a search.
//   - ErrMissingEndpoint:  start or goal is not set.
//   - ErrUnknownAlgorithm: Run called with a value outside the Algorithm enum.
//   - ErrOptionViolation:  an invalid Option was supplied.
//   - ErrInvalidPath:      ValidatePath found a broken path.
//
// "No path found" is not an error: Result.Found is false, Result.Path is empty
// and Result.VisitedOrder still lists every cell the search touched.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each push/pop costs O(log N).
//   - Space: O(N) for cost, predecessor and membership maps.
//
// Thread safety:
//
//   - A search reads the graph without locking. The caller must not mutate
//     the grid while a search is running.
package search
