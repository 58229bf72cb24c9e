// Package constraint defines the error functions a sketch is solved against.
//
// A Constraint is defined over one or more geometry primitives and reduces the
// current geometry to a single non-negative scalar: zero means satisfied.
// Error reads live parameter values; ErrorAt reads them through a
// geometry.Valuer so that candidate vectors can be evaluated without touching
// shared parameters.
//
// # Constraint Types
//
//   - LineLength: |length(line) - target|
//   - Angular: |angle(lineA, lineB) - target|, degrees
//   - PointDistance: ||a - b| - target|
//
// New constraint types embed Base for point and parameter bookkeeping and
// implement Error, ErrorAt and Kind.
package constraint
