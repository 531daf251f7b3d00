package q15

// VerifyBlock compares a candidate buffer against a reference buffer
// elementwise. It reports whether every element matches exactly, and the
// maximum absolute difference observed (0 when equal, reported either way).
// Differences are widened to int32 before taking the absolute value, so the
// extreme pair (32767 vs -32768) yields 65535 without overflow.
// Slices must have equal length. Panics if lengths differ.
func VerifyBlock(ref, candidate []int16) (ok bool, maxDiff int32) {
	if len(ref) != len(candidate) {
		panic("q15: slice length mismatch")
	}

	ok = true
	for i := range ref {
		d := int32(ref[i]) - int32(candidate[i])
		if d < 0 {
			d = -d
		}

		if d > maxDiff {
			maxDiff = d
		}
		if d != 0 {
			ok = false
		}
	}

	return ok, maxDiff
}
