package configs

import (
	"errors"
)

// First returns the value at path in the first file defining it, or the zero value.
func First[T any](loader Loader, path string) T {
	value, _ := Find[T](loader, path)
	return value
}

// Find is First that also reports whether any file defines path.
func Find[T any](loader Loader, path string) (value T, ok bool) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false
		}
		panic(err)
	}
	return value, true
}
