// Package server provides the HTTP interface to the maze service.
//
// Endpoints:
//
//	GET  /api/maze                 maze as JSON
//	GET  /api/maze.{svg|png|txt}   rendered maze
//	GET  /ws                       live erase-event stream (WebSocket)
//	POST /mcp                      Model Context Protocol messages
//	GET  /healthz                  liveness probe
//
// Query parameters for /api and /ws: width, height, seed, solve. /ws also
// takes delay, a Go duration between erase events.
//
// WebSocket messages are JSON objects with a type field: one "grid" message
// carrying the geometry, one "erase" message per removed wall in union order
// and a final "complete" message with the run summary. A client that
// disconnects stops the stream.
package server
