// Package geometry provides the parameterized 2-D primitives of a sketch.
//
// Every free coordinate lives in an Arena slot and is referenced through a
// Param handle. Points and lines store handles, never values, so a write to a
// Param is visible through every Point, Line and constraint sharing it.
//
// # Shared Parameters
//
//	a := geometry.NewArena()
//	origin := a.NewPoint(0, 0)
//	l1 := geometry.NewLine(origin, a.NewPoint(3, 0))
//	l2 := geometry.NewLine(origin, a.NewPoint(0, 4))  // shares the vertex
//
//	origin.X.Set(1)  // moves the start of both lines
//
// Identity is handle equality: two Params holding the same number are
// different parameters unless they are the same slot of the same Arena.
package geometry
