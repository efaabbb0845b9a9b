// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

// DuplicateDetector counts how often each position key has been seen.
type DuplicateDetector struct {
	// counts maps a Zobrist key to its number of occurrences
	counts map[uint64]int
	// duplicateCount tracks additions of an already-seen key
	duplicateCount int
}

// NewDuplicateDetector creates a new empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{counts: make(map[uint64]int)}
}

// Add records one occurrence of the key and returns its new count.
func (d *DuplicateDetector) Add(key uint64) int {
	d.counts[key]++
	n := d.counts[key]
	if n > 1 {
		d.duplicateCount++
	}
	return n
}

// Remove forgets one occurrence of the key, as when a move is taken back.
func (d *DuplicateDetector) Remove(key uint64) {
	n, ok := d.counts[key]
	if !ok {
		return
	}
	if n > 1 {
		d.duplicateCount--
		d.counts[key] = n - 1
		return
	}
	delete(d.counts, key)
}

// Count returns how many times the key has been recorded.
func (d *DuplicateDetector) Count(key uint64) int {
	return d.counts[key]
}

// DuplicateCount returns the number of repeated occurrences recorded.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct keys.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.counts)
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.counts = make(map[uint64]int)
	d.duplicateCount = 0
}
