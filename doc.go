// Package frontier is a small toolkit for best-first search over state
// spaces that are generated on the fly rather than stored as a graph.
//
// What is in the box
//
//	• pqueue/    : generic array-backed binary min-heap ordered by a Less func
//	• search/    : the best-first driver: extract, test, expand until done
//	• route/     : shortest path through every city of a distance table
//	• synthesis/ : fewest reverse replacements from a molecule to "e"
//	• combat/    : least mana to win a turn-based wizard duel
//	• cmd/frontier : command line front end for the three puzzles
//
// How the pieces fit
//
//	A domain defines a state type, an ordering over it and a Problem
//	(goal test + expansion). search.Run keeps a pqueue.PriorityQueue of
//	states, always expanding the most preferable one, until a goal is
//	extracted or the frontier runs dry.
//
//	     seeds ──▶ [ frontier ] ──extract──▶ dead? ──▶ goal? ──▶ result
//	                    ▲                                │
//	                    └──────────── expand ◀───────────┘
//
// The engine packages never import the puzzle packages.
//
//	go get github.com/katalvlaran/frontier
package frontier
