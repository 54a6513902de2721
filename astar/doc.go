// Package astar implements single-source single-goal A* search over
// weighted undirected graphs embedded in 2D space.
//
// The open list is an insert-only priority queue: improving a node's
// tentative cost pushes a fresh entry instead of adjusting the queued
// one, and superseded entries are discarded when popped. The search
// reports the cost of the cheapest path together with two effort
// counters, the number of nodes expanded and the number of queue pops.
//
// Edge weights must be non-negative. Heuristics are injected as plain
// functions; with an admissible heuristic the reported cost is optimal,
// and with the zero heuristic the search degenerates to Dijkstra's
// algorithm.
package astar
