package route_test

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/route"
)

func ExampleOrder() {
	stations := []geo.Point{
		{Lat: 1, Lon: 2},
		{Lat: 2, Lon: 4},
		{Lat: 3, Lon: 6},
		{Lat: 10, Lon: 20},
	}
	res, err := route.Order(stations)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Order, res.Orientation)
	// Output: [0 1 2 3] west
}

func ExampleCutAtDummy() {
	// Closed tour over stations 0..3 plus the dummy 4.
	path, ok := route.CutAtDummy([]int{2, 3, 4, 0, 1}, 4)
	fmt.Println(path, ok)
	// Output: [0 1 2 3] true
}
