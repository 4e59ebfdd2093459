// Package sliceutil holds in-place slice helpers.
package sliceutil

// Pop removes the element at the last index equal to value, shifting the
// tail down by one. The caller's slice is shortened through the pointer.
// Absent values are a no-op.
func Pop[T comparable](s *[]T, value T) {
	if s == nil {
		return
	}
	elems := *s
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] == value {
			copy(elems[i:], elems[i+1:])
			var zero T
			elems[len(elems)-1] = zero // release the duplicated tail element
			*s = elems[:len(elems)-1]
			return
		}
	}
}

// LastIndex returns the last index whose element equals value, or -1.
func LastIndex[T comparable](s []T, value T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == value {
			return i
		}
	}
	return -1
}
