// Package testutil provides testing utilities for geosolve.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating sketches and helpers
// for checking solved geometry.
//
// # Random Sketches
//
//	rng := testutil.NewRNG(seed)
//	a := geometry.NewArena()
//	p := rng.Point(a, 10)          // coordinates uniform in [-10, 10)
//	l := rng.Line(a, 10)
//	pts := rng.Polygon(a, 5, 3)    // 5 points on a perturbed circle of radius 3
package testutil
