package utils

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to a number: %w", s, err)
	}

	return n, nil
}

// AbsInt returns |x - y|.
func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}
