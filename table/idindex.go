package table

import (
	"github.com/google/btree"
)

type idEntry struct {
	id     string
	record Record
}

// idIndex is the unique index over record ids. It doubles as the duplicate-id
// guard on insert and keeps entries ordered, so lookups and ascending
// traversal stay O(log n) regardless of store size.
type idIndex struct {
	btree *btree.BTreeG[*idEntry]
}

func newIDIndex() *idIndex {
	return &idIndex{
		btree: btree.NewG(32, func(a, b *idEntry) bool {
			return a.id < b.id
		}),
	}
}

func (i *idIndex) Add(record Record) error {
	id := record.ID()
	if id == "" {
		return ErrMissingID
	}
	if i.btree.Has(&idEntry{id: id}) {
		return ErrDuplicateID
	}

	i.btree.ReplaceOrInsert(&idEntry{id: id, record: record})
	return nil
}

// Replace swaps the record stored under an existing id, after a merge.
func (i *idIndex) Replace(record Record) {
	i.btree.ReplaceOrInsert(&idEntry{id: record.ID(), record: record})
}

func (i *idIndex) Get(id string) (Record, bool) {
	entry, found := i.btree.Get(&idEntry{id: id})
	if !found {
		return nil, false
	}
	return entry.record, true
}

func (i *idIndex) Remove(id string) {
	i.btree.Delete(&idEntry{id: id})
}

func (i *idIndex) Len() int {
	return i.btree.Len()
}
