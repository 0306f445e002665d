package utils

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrPanicked = errors.New("panic")

func Try[T any](fun func() (T, error)) (res T, err error) { //nolint:nonamedreturns
	defer func() {
		if r := recover(); r != nil {
			res = lo.Empty[T]()
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	return fun()
}

// Try2 is Try for functions returning two values and no error.
func Try2[A any, B any](fun func() (A, B)) (a A, b B, err error) { //nolint:nonamedreturns
	defer func() {
		if r := recover(); r != nil {
			a, b = lo.Empty[A](), lo.Empty[B]()
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	a, b = fun()

	return a, b, nil
}
