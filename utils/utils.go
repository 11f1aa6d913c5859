package utils

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

// Find returns the first element matching pred.
func Find[A any](input []A, pred func(A) bool) (A, bool) {
	for _, item := range input {
		if pred(item) {
			return item, true
		}
	}
	var zero A
	return zero, false
}
