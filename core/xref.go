package core

import (
	"fmt"
	"sort"
)

// XRefEntry represents a single cross-reference table entry
type XRefEntry struct {
	Offset     int64 // Byte offset in file (for in-use objects) or next free object number (for free objects)
	Generation int   // Generation number
	InUse      bool  // true if object is in use, false if free
}

// XRefTable represents a PDF cross-reference table
type XRefTable struct {
	Entries map[int]*XRefEntry // Map from object number to XRef entry
	Trailer Dict               // Trailer dictionary
}

// NewXRefTable creates a new XRef table holding the mandatory free entry for
// object 0.
func NewXRefTable() *XRefTable {
	return &XRefTable{
		Entries: map[int]*XRefEntry{
			0: {Offset: 0, Generation: 65535, InUse: false},
		},
		Trailer: make(Dict),
	}
}

// Get retrieves an XRef entry by object number
func (x *XRefTable) Get(objNum int) (*XRefEntry, bool) {
	entry, ok := x.Entries[objNum]
	return entry, ok
}

// Set adds or updates an XRef entry
func (x *XRefTable) Set(objNum int, entry *XRefEntry) {
	x.Entries[objNum] = entry
}

// Size returns the number of entries in the table
func (x *XRefTable) Size() int {
	return len(x.Entries)
}

// AppendPDF writes the classic "xref" section. Object numbers must be
// contiguous from 0; the writer guarantees this by allocating sequentially.
func (x *XRefTable) AppendPDF(b []byte) ([]byte, error) {
	nums := make([]int, 0, len(x.Entries))
	for n := range x.Entries {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	for i, n := range nums {
		if n != i {
			return nil, fmt.Errorf("xref: object %d missing from table", i)
		}
	}

	b = append(b, fmt.Sprintf("xref\n0 %d\n", len(nums))...)
	for _, n := range nums {
		e := x.Entries[n]
		kind := byte('f')
		if e.InUse {
			kind = 'n'
		}
		// each entry is exactly 20 bytes including the two-byte EOL
		b = append(b, fmt.Sprintf("%010d %05d %c \n", e.Offset, e.Generation, kind)...)
	}
	return b, nil
}
