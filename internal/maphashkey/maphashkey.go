// Package maphashkey builds a default O(1)-per-element hash function for
// a sequence of generic, comparable elements, using
// github.com/dolthub/maphash to hash each element without requiring C to
// implement its own hash method. searchcache uses this as the default
// HashWord for any comparable character type; callers with a faster
// domain-specific hash (e.g. C = byte, hashed via a rolling CRC) may
// supply their own instead.
package maphashkey

import "github.com/dolthub/maphash"

// WordHasher folds a sequence of C into a single uint64, suitable as an
// LRU cache key. The combination step is the classic boost::hash_combine
// constant, applied once per element — O(|word|) total, O(1) per element
// as the per-character hash itself is O(1).
func WordHasher[C comparable]() func(word []C) uint64 {
	h := maphash.NewHasher[C]()
	return func(word []C) uint64 {
		var seed uint64
		for _, c := range word {
			seed ^= h.Hash(c) + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
		}
		return seed
	}
}
