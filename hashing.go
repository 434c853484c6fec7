// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// applyKey is the key of the conjunction caches: the ids of the two
// operands, smallest first.
type applyKey struct {
	a uint64
	b uint64
}

func mkapplykey(a, b *Node) applyKey {
	if b.id < a.id {
		a, b = b, a
	}
	return applyKey{a.id, b.id}
}

// sortElements puts a partition in its canonical order. Primes of a
// partition are distinct nodes, so ordering by prime id is total.
func sortElements(elems []Element) {
	sort.Slice(elems, func(i, j int) bool {
		return elems[i].prime.id < elems[j].prime.id
	})
}

// partitionHash hashes a partition already in canonical order. Since primes
// and subs are themselves canonical nodes, hashing their ids is enough to
// identify the partition.
func partitionHash(elems []Element) uint64 {
	h := xxhash.New()
	var buf [16]byte
	for _, e := range elems {
		binary.LittleEndian.PutUint64(buf[:8], e.prime.id)
		binary.LittleEndian.PutUint64(buf[8:], e.sub.id)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// sameElements compares two partitions in canonical order.
func sameElements(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cacheStat stores status information about the usage of the unicity
// tables and the conjunction caches.
type cacheStat struct {
	uniqueAccess int // accesses to the unicity tables
	uniqueHit    int // partitions found in the unicity tables
	uniqueMiss   int // partitions not found in the unicity tables
	opHit        int // entries found in the conjunction caches
	opMiss       int // entries not found in the conjunction caches
}
