// Package sparse provides a sparse set of small integer IDs.
//
// A sparse set supports O(1) insertion, removal and membership testing while keeping
// its members packed in a dense array. The matcher uses one to track which
// automata are in the middle of a match, so it can tell in constant time whether the
// whole set is idle.
package sparse

import "github.com/coregx/condex/internal/conv"

// SparseSet is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in the dense array.
type SparseSet struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // members
	size   uint32
}

// NewSparseSet creates a set able to hold values in [0, capacity).
func NewSparseSet(capacity int) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, conv.IntToUint32(capacity)),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value and reports whether it was absent.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove deletes a value and reports whether it was present.
func (s *SparseSet) Remove(value uint32) bool {
	if !s.Contains(value) {
		return false
	}

	// swap with the last member and pop
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx

	s.size--
	s.dense = s.dense[:s.size]
	return true
}

// Set inserts the value if member is true and removes it otherwise.
func (s *SparseSet) Set(value uint32, member bool) {
	if member {
		s.Insert(value)
	} else {
		s.Remove(value)
	}
}

// IsEmpty returns true if the set contains no elements
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}
