package plain_test

import (
	"fmt"

	"plaindata/options"
	"plaindata/plain"
)

type Point struct {
	X, Y int
}

func ExampleAugment() {
	points := plain.MustAugment[Point](options.Default().With(options.FlagOrder | options.FlagFrozen))

	p := points.MustNew(Point{X: 1, Y: 2})
	fmt.Println(p, points.Fields())

	err := p.Set("X", 10)
	fmt.Println(err)

	moved, _ := p.Replace(map[string]any{"Y": 5})
	less, _ := p.Less(moved)
	fmt.Println(moved, less)

	_, err = p.Replace(map[string]any{"x": 3})
	fmt.Println(err)

	// Output:
	// Point(X=1, Y=2) [X Y]
	// plaindata: cannot assign field "X" of frozen Point
	// Point(X=1, Y=5) true
	// plaindata: Point has no field "x" (did you mean "X"?)
}
