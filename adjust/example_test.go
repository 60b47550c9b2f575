package adjust

import "fmt"

func ExampleParseStat() {
	s, _ := ParseStat("best")
	fmt.Println(s)
	// Output:
	// best
}

func ExampleMFB_Adjust() {
	rawCoords := [][]float64{{0}, {1}, {2}, {3}, {4}}
	obsCoords := [][]float64{{1}, {3}}

	// The radar overestimates by a factor of two everywhere.
	raw := []float64{2, 4, 6, 8, 10}
	obs := []float64{2, 4}

	mfb, err := NewMFB(obsCoords, rawCoords, WithNeighbours(1))
	if err != nil {
		panic(err)
	}
	adjusted, err := mfb.Adjust(obs, raw, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f\n", adjusted)
	// Output:
	// [1 2 3 4 5]
}
