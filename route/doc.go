// Package route finds the shortest path visiting every city of a symmetric
// distance table exactly once, using best-first search over partial paths.
//
// Each frontier entry is a Path: the ordered cities visited, a bitmap of the
// same cities for membership tests, the current end city and the length so
// far. Paths are ordered by length, then by number of cities covered, so a
// complete path beats an equally long partial one.
//
// Input lines look like:
//
//	London to Dublin = 464
//	London to Belfast = 518
//	Dublin to Belfast = 141
//
// for which Shortest returns 605 (London -> Dublin -> Belfast).
package route
