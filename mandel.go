package mandelzoom

// EscapeTime classifies a single point of the complex plane.
//
// It iterates z = z*z + c starting from z = c and returns the index of
// the step at which |z| first exceeded 2, or maxIter-1 if the orbit
// stayed bounded for the whole budget. The result is always in
// [0, maxIter-1]. The escape test compares the squared magnitude
// against 4 to avoid a square root.
func EscapeTime(c complex128, maxIter int) int {
	z := c
	for n := 0; n < maxIter; n++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return n
		}
		z = z*z + c
	}
	return maxIter - 1
}

// EscapeTimes is the batched form of EscapeTime. It evaluates all of cs
// in lockstep: at every global step only the points that have not yet
// escaped are advanced, and a point's count freezes at the step where
// its magnitude first exceeded 2. Results are written into out, which
// must have len(cs) elements. Per point the counts are identical to
// EscapeTime; batching only amortizes the loop overhead.
func EscapeTimes(cs []complex128, maxIter int, out []int) {
	if len(out) != len(cs) {
		panic("mandelzoom: out length does not match input length")
	}

	zs := make([]complex128, len(cs))
	copy(zs, cs)
	escaped := make([]bool, len(cs))
	for i := range out {
		out[i] = maxIter - 1
	}

	remaining := len(cs)
	for n := 0; n < maxIter && remaining > 0; n++ {
		for j, z := range zs {
			if escaped[j] {
				continue
			}
			if real(z)*real(z)+imag(z)*imag(z) > 4 {
				out[j] = n
				escaped[j] = true
				remaining--
				continue
			}
			zs[j] = z*z + cs[j]
		}
	}
}
