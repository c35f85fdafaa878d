package step

import "maps"

// Record is the accumulated data of the whole wizard. Only persisted fields
// are ever stored in it.
type Record map[Field]string

// Entry is a single field of a record.
type Entry struct {
	Field Field
	Value string
}

// Get returns the value of f and whether it has ever been set.
func (r Record) Get(f Field) (string, bool) {
	v, ok := r[f]
	return v, ok
}

// Len returns the number of fields set.
func (r Record) Len() int {
	return len(r)
}

// Clone returns an independent copy of r. A nil record clones to an empty one.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

// Merge returns a new record holding r overlaid with update. Fields absent
// from update keep their value in r; nothing is ever removed.
func (r Record) Merge(update Record) Record {
	out := r.Clone()
	maps.Copy(out, update)
	return out
}

// Entries returns the set fields in display order.
func (r Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r))
	for _, f := range RecordFields {
		if v, ok := r[f]; ok {
			entries = append(entries, Entry{Field: f, Value: v})
		}
	}
	return entries
}
