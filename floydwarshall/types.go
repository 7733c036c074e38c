package floydwarshall

import "errors"

// ErrInvalidGraph indicates a nil or invalid input matrix.
var ErrInvalidGraph = errors.New("floydwarshall: matrix is nil or invalid")

// Operations returns the number of relaxation steps, n³.
func Operations(n int) int64 {
	v := int64(n)
	return v * v * v
}
