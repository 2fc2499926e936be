// Package entity contains the core business objects of the storefront.
//
// Entities are values. Factories validate before construction and updates
// return a new value built from a copy of the current one.
package entity

// Override returns *proposed when the caller supplied it and current otherwise.
func Override[T any](current T, proposed *T) T {
	if proposed == nil {
		return current
	}

	return *proposed
}
