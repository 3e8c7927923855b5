package boolcore

// Set is a node-keyed chained-hash set, sharing the same chaining and
// resize discipline as Dict (spec.md §3). It owns one strong reference
// to every element it stores.
type Set struct {
	buckets [][]*Node
	count   int
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{buckets: make([][]*Node, primeSizes[0])}
}

// Insert adds x, consuming it. If x is already present (by handle
// identity) the redundant reference is released and Insert reports
// false; otherwise it reports true.
func (s *Set) Insert(x *Node) bool {
	b := bucketOf(x, len(s.buckets))
	for _, e := range s.buckets[b] {
		if e == x {
			x.DecRef()
			return false
		}
	}
	s.buckets[b] = append(s.buckets[b], x)
	s.count++
	s.maybeGrow()
	return true
}

// Contains reports whether x is a member. Does not consume x.
func (s *Set) Contains(x *Node) bool {
	if len(s.buckets) == 0 {
		return false
	}
	b := bucketOf(x, len(s.buckets))
	for _, e := range s.buckets[b] {
		if e == x {
			return true
		}
	}
	return false
}

// Remove deletes x, releasing its owned reference, and reports whether
// it was present. Does not consume the lookup argument.
func (s *Set) Remove(x *Node) bool {
	b := bucketOf(x, len(s.buckets))
	bucket := s.buckets[b]
	for i, e := range bucket {
		if e == x {
			e.DecRef()
			s.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			s.count--
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s *Set) Len() int { return s.count }

// Clear releases every owned element and empties the set.
func (s *Set) Clear() {
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			e.DecRef()
		}
	}
	s.buckets = make([][]*Node, primeSizes[0])
	s.count = 0
}

func (s *Set) maybeGrow() {
	if !loadFactorExceeded(s.count, len(s.buckets)) {
		return
	}
	idx := primeIndexAtLeast(len(s.buckets) + 1)
	newSize := primeSizes[idx]
	if newSize <= len(s.buckets) {
		return
	}
	newBuckets := make([][]*Node, newSize)
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			nb := bucketOf(e, newSize)
			newBuckets[nb] = append(newBuckets[nb], e)
		}
	}
	s.buckets = newBuckets
}

// TakeAll empties the set and returns its elements in bucket/list order,
// transferring ownership of each to the caller (no DecRef is performed).
func (s *Set) TakeAll() []*Node {
	out := make([]*Node, 0, s.count)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	s.buckets = make([][]*Node, primeSizes[0])
	s.count = 0
	return out
}

// Each calls fn for every element, visiting buckets in order and
// elements within a bucket in list order (spec.md §3). fn must not
// insert or remove from s during iteration.
func (s *Set) Each(fn func(*Node)) {
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			fn(e)
		}
	}
}

// Equal reports whether s and other hold the same elements.
func (s *Set) Equal(other *Set) bool {
	if s.count != other.count {
		return false
	}
	return s.isSubsetOf(other)
}

// NotEqual is the negation of Equal.
func (s *Set) NotEqual(other *Set) bool { return !s.Equal(other) }

func (s *Set) isSubsetOf(other *Set) bool {
	ok := true
	s.Each(func(e *Node) {
		if !other.Contains(e) {
			ok = false
		}
	})
	return ok
}

// Subset reports whether every element of s is in other.
func (s *Set) Subset(other *Set) bool { return s.isSubsetOf(other) }

// StrictSubset reports whether s is a subset of other and strictly
// smaller. spec.md §9 calls out a self-compare bug in one historical
// source variant (`self->length >= self->length`); this implementation
// uses the corrected `s.count < other.count` check instead.
func (s *Set) StrictSubset(other *Set) bool {
	return s.count < other.count && s.isSubsetOf(other)
}

// Superset reports whether every element of other is in s.
func (s *Set) Superset(other *Set) bool { return other.isSubsetOf(s) }

// StrictSuperset reports whether s is a superset of other and strictly
// larger.
func (s *Set) StrictSuperset(other *Set) bool {
	return s.count > other.count && other.isSubsetOf(s)
}
