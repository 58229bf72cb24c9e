package geosolve_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/geosolve"
	"github.com/hupe1980/geosolve/constraint"
	"github.com/hupe1980/geosolve/geometry"
	"github.com/hupe1980/geosolve/minimize"
)

// Example_rightTriangle fixes the three sides of a triangle to 3/4/5 and
// checks the resulting angle without constraining it.
func Example_rightTriangle() {
	a := geometry.NewArena()
	p := a.NewPoint(0, 0)
	q := a.NewPoint(3.5, 0.5)
	r := a.NewPoint(0.5, 2.5)

	pq := geometry.NewLine(p, q)
	pr := geometry.NewLine(p, r)
	qr := geometry.NewLine(q, r)

	s := geosolve.New()
	for _, side := range []struct {
		line   geometry.Line
		length float64
	}{{pq, 4}, {pr, 3}, {qr, 5}} {
		c, err := constraint.NewLineLength(side.line, side.length)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.AddConstraint(c); err != nil {
			log.Fatal(err)
		}
	}

	res, err := s.Solve(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	angle, _ := constraint.AngleBetween(pq, pr)
	fmt.Println("converged:", res.Converged)
	fmt.Printf("sides: %.3f %.3f %.3f\n", pq.Length(), pr.Length(), qr.Length())
	fmt.Printf("angle: %.1f\n", angle)
	// Output:
	// converged: true
	// sides: 4.000 3.000 5.000
	// angle: 90.0
}

// Example_sharedVertex shows two lines sharing a vertex: moving the shared
// point moves both lines.
func Example_sharedVertex() {
	a := geometry.NewArena()
	vertex := a.NewPoint(0, 0)
	l1 := geometry.NewLine(vertex, a.NewPoint(2, 0))
	l2 := geometry.NewLine(vertex, a.NewPoint(0, 2))

	s := geosolve.New(geosolve.WithMinimizer(minimize.BFGS{}))
	if err := s.AddConstraint(constraint.NewAngular(l1, l2, 60)); err != nil {
		log.Fatal(err)
	}

	res, err := s.Solve(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	angle, _ := constraint.AngleBetween(l1, l2)
	fmt.Println("params:", res.Params)
	fmt.Println("shared:", l1.Start.Equal(l2.Start))
	fmt.Printf("angle: %.1f\n", angle)
	// Output:
	// params: 6
	// shared: true
	// angle: 60.0
}

// Example_validation shows that negative lengths are rejected up front.
func Example_validation() {
	a := geometry.NewArena()
	line := geometry.NewLine(a.NewPoint(0, 0), a.NewPoint(1, 0))

	_, err := constraint.NewLineLength(line, -1)
	fmt.Println(err)
	// Output: invalid length -1: length must be >= 0
}
