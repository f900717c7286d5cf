// Package gridpath is a step-by-step visualizer core for informed search on
// a 4-connected grid: A* and Greedy Best-First, replayed cell by cell.
//
// What is gridpath?
//
//	A small set of packages that bring together:
//		• Grid model: coordinates, Start/Goal/Wall roles, transient marks
//		• Search: A* (optimal) and Greedy Best-First (fast, not optimal)
//		  under the Manhattan heuristic, with deterministic tie-breaking
//		• Path reconstruction: Start-exclusive, Goal-inclusive
//		• Playback: a forward-only reveal cursor with lookahead
//		• Front ends: a tcell terminal UI, a gin HTTP API, PNG snapshots
//
// Packages:
//
//	grid/      Grid, Coord, Role, Mark; BFS reachability and distance oracles
//	search/    Run, AStarSearch, GreedySearch, Reconstruct, ValidatePath
//	playback/  Sequencer, Event
//	session/   configure / run / step / reset command surface over one grid
//	config/    environment and .env settings for the executables
//	render/    PNG snapshots of a grid and its path
//	api/       HTTP router and the search controller
//	cmd/       gridpath-tui and gridpath-server
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S*#*G
//	.***.
//
// A* routes around the wall in six steps.
package gridpath
