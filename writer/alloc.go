package writer

// allocator issues object numbers for one write pass, strictly increasing
// from 1. Numbers are never reused within a pass; generation is always 0.
type allocator struct {
	next int
}

func newAllocator() *allocator { return &allocator{next: 1} }

// Next returns a previously unused object number.
func (a *allocator) Next() int {
	n := a.next
	a.next++
	return n
}

// Reserve allocates a number for an object whose body is written later.
// The catalog and page tree are reserved before any page is processed so
// pages can reference their parent immediately.
func (a *allocator) Reserve() int { return a.Next() }

// Count reports how many numbers have been issued.
func (a *allocator) Count() int { return a.next - 1 }
