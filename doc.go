// Package lvlmaze generates random perfect mazes: rectangular grids in which
// every cell is reachable from every other cell by exactly one route.
//
// 🚀 How it works
//
//	Start with every interior wall standing, shuffle the walls, then knock
//	down each wall whose two cells are not yet connected. A disjoint set
//	tracks connectivity; the run stops the moment a single region remains.
//	The result is a uniformly shuffled Kruskal spanning tree of the grid.
//
// Everything is organized under these packages:
//
//	grid/            cell ids, wall enumeration, lattice nodes & drawing geometry
//	dsu/             disjoint set (union by size, path halving)
//	maze/            the generator, its reporter events and the finished Maze
//	solve/           BFS over passages, unique paths, perfect-maze verification
//	render/          SVG, PNG and lipgloss text renderers driven by reporter events
//	config/          .env + MAZE_* environment configuration
//	service/         request validation, LRU-cached rendering, run ids
//	server/          HTTP API, WebSocket erase stream, /mcp endpoint
//	transport/mcp/   Model Context Protocol tools
//	cmd/mazegen/     command-line launcher
//
// Quick ASCII example (2×2, wall 2-3 left standing):
//
//	+---+---+
//	|       |
//	+   +   +
//	|   |   |
//	+---+---+
//
//	go run github.com/katalvlaran/lvlmaze/cmd/mazegen draw --width 20 --height 10 --solve
package lvlmaze
