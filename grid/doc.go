// Package grid models a fixed-size 2D occupancy grid for pathfinding.
//
// What:
//
//   - Grid owns one Role per cell (Empty, Wall, Start, Goal) keyed by Coord.
//   - At most one Start and at most one Goal exist at any time.
//   - Neighbors enumerates the ≤4 orthogonal, in-bounds, non-wall cells in the
//     fixed order up, down, left, right. Search tie-breaking depends on it.
//   - A separate transient Mark layer (Visited, Path) records what a playback
//     has revealed; ResetTransient clears it without touching roles.
//   - Reachable and Distance run a breadth-first sweep and serve as a
//     brute-force oracle for the informed searches.
//
// Why:
//
//   - Roles are state keyed by coordinate, so a Coord is a plain comparable
//     value usable as a map key; no cell owns another.
//
// Complexity:
//
//   - SetRole, Role, Neighbors: O(1).
//   - ClearAll, ResetTransient, Walls, String: O(W×H).
//   - Reachable, Distance: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside [0,H)×[0,W).
//   - ErrEndpointWall: a Wall was requested on the Start or Goal cell.
//
// Thread safety:
//
//   - Grid is not safe for concurrent mutation. Callers must not change roles
//     while a search over the same grid is running.
package grid
