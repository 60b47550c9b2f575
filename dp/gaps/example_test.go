package gaps

import "fmt"

func ExampleRuns() {
	cond := []bool{true, false, false, true, true, false, true}
	for _, r := range Runs(cond) {
		fmt.Printf("[%d,%d)\n", r.Start, r.End)
	}
	// Output:
	// [0,1)
	// [3,5)
	// [6,7)
}
