package byteslice

import "math"

// addOverflowSafe adds a and b, returning ok = false when the result would
// overflow int.
func addOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// pastEnd reports whether the region [offset, offset+length) runs past size.
// A sum that overflows is past any end.
func pastEnd(offset, length, size int) bool {
	end, ok := addOverflowSafe(offset, length)
	return !ok || end > size
}

// cloneBytes returns a copy of b that never aliases it. The result is non-nil.
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
