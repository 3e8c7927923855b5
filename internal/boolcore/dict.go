package boolcore

type dictEntry struct {
	key   *Node
	value *Node
}

// Dict is a chained-hash table keyed by node identity, value an
// expression handle. It owns one strong reference to every key and
// value it stores; resize rehashes entries into a larger ascending-prime
// bucket count once the load factor exceeds 1.5 (spec.md §3).
type Dict struct {
	buckets [][]dictEntry
	count   int
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{buckets: make([][]dictEntry, primeSizes[0])}
}

// Insert stores value under key, consuming both. If key already has an
// entry (by handle identity), the redundant incoming key reference is
// released and the old value is replaced (and released).
func (d *Dict) Insert(key, value *Node) {
	b := bucketOf(key, len(d.buckets))
	for i, e := range d.buckets[b] {
		if e.key == key {
			key.DecRef()
			e.value.DecRef()
			d.buckets[b][i].value = value
			return
		}
	}
	d.buckets[b] = append(d.buckets[b], dictEntry{key: key, value: value})
	d.count++
	d.maybeGrow()
}

// Contains reports whether key has an entry. Does not consume key.
func (d *Dict) Contains(key *Node) bool {
	_, ok := d.Search(key)
	return ok
}

// Search returns the value stored under key, if any, as a borrowed
// reference. Does not consume key.
func (d *Dict) Search(key *Node) (*Node, bool) {
	if len(d.buckets) == 0 {
		return nil, false
	}
	b := bucketOf(key, len(d.buckets))
	for _, e := range d.buckets[b] {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// Remove deletes key's entry, releasing its owned key and value. Reports
// whether an entry was found. Does not consume the lookup key.
func (d *Dict) Remove(key *Node) bool {
	b := bucketOf(key, len(d.buckets))
	bucket := d.buckets[b]
	for i, e := range bucket {
		if e.key == key {
			e.key.DecRef()
			e.value.DecRef()
			d.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			d.count--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (d *Dict) Len() int { return d.count }

// Clear releases every owned key and value and empties the dict.
func (d *Dict) Clear() {
	for _, bucket := range d.buckets {
		for _, e := range bucket {
			e.key.DecRef()
			e.value.DecRef()
		}
	}
	d.buckets = make([][]dictEntry, primeSizes[0])
	d.count = 0
}

func (d *Dict) maybeGrow() {
	if !loadFactorExceeded(d.count, len(d.buckets)) {
		return
	}
	idx := primeIndexAtLeast(len(d.buckets) + 1)
	newSize := primeSizes[idx]
	if newSize <= len(d.buckets) {
		return // already at the last prime
	}
	newBuckets := make([][]dictEntry, newSize)
	for _, bucket := range d.buckets {
		for _, e := range bucket {
			nb := bucketOf(e.key, newSize)
			newBuckets[nb] = append(newBuckets[nb], e)
		}
	}
	d.buckets = newBuckets
}
