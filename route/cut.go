package route

// CutAtDummy opens a solver cycle at the dummy vertex.
//
// When dummy occurs exactly once at position pos the path is the rotation
// cycle[pos+1:] ++ cycle[:pos]: it starts right after the dummy and ends
// right before it, dropping the two zero-cost dummy edges. ok is true.
//
// When dummy occurs zero times or more than once the cycle is ill-formed;
// every occurrence is stripped and the remaining order returned with
// ok == false so the caller can flag the degradation.
//
// cycle is never modified.
func CutAtDummy(cycle []int, dummy int) (path []int, ok bool) {
	pos, count := -1, 0
	for i, v := range cycle {
		if v == dummy {
			if pos < 0 {
				pos = i
			}
			count++
		}
	}

	if count == 1 {
		path = make([]int, 0, len(cycle)-1)
		path = append(path, cycle[pos+1:]...)
		path = append(path, cycle[:pos]...)

		return path, true
	}

	path = make([]int, 0, len(cycle))
	for _, v := range cycle {
		if v != dummy {
			path = append(path, v)
		}
	}

	return path, false
}
