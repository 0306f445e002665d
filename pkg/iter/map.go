package iter

import "fmt"

// MapErr applies fun to every element and fails on the first error,
// reporting the index of the element that failed.
func MapErr[F any, T any](xs []F, fun func(F) (T, error)) ([]T, error) {
	out := make([]T, 0, len(xs))

	for i, x := range xs {
		mapped, err := fun(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, mapped)
	}

	return out, nil
}
