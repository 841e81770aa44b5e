// Package storage provides the generic in-memory collections behind every
// record store. Each collection owns its lock, so stores built on them are
// safe for concurrent handlers without further coordination.
//
// Nothing here is durable: contents live for the lifetime of the process.
package storage

// Log is an append-only, ordered collection.
type Log[T any] interface {
	Append(item T)
	All() []T
	Filter(keep func(T) bool) []T
	Len() int
}

// Keyed is an insertion-ordered map whose Put replaces any existing value
// under the same key while keeping that key's original position.
type Keyed[K comparable, T any] interface {
	Put(key K, item T) (replaced bool)
	Get(key K) (T, error)
	All() []T
	Len() int
}
