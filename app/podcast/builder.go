// Package podcast holds the podcast feed model and the validating builders that assemble it.
//
// Model values are plain structs and are treated as immutable once built. Optional strings are empty
// when absent; optional numbers, dates and flags are pointers so that "not specified" stays distinct
// from zero or false.
package podcast

// Builder is the contract shared by every entity builder.
//
// Build is a pure read of the builder state: it can be called any number of times and returns false
// whenever HasEnoughDataToBuild does.
type Builder[T any] interface {
	HasEnoughDataToBuild() bool
	Build() (T, bool)
}

// buildOptional returns a pointer to the built value, or nil when the builder is not ready.
// A nil builder pointer is accepted: every builder's readiness check is nil-safe.
func buildOptional[T any](b Builder[T]) *T {
	value, ok := b.Build()
	if !ok {
		return nil
	}
	return &value
}

// buildAll builds every ready builder in order and drops the rest. The result is nil when nothing was built.
func buildAll[T any, B Builder[T]](builders []B) []T {
	var values []T
	for _, b := range builders {
		if value, ok := b.Build(); ok {
			values = append(values, value)
		}
	}
	return values
}

func anyReady[T any, B Builder[T]](builders []B) bool {
	for _, b := range builders {
		if b.HasEnoughDataToBuild() {
			return true
		}
	}
	return false
}
