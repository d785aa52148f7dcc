package cdb

// Iterator enumerates every live record in a database exactly once, walking
// buckets 0..256 in order and, within each bucket, slots 0..count in order.
// Order across distinct keys is a function of file layout, not insertion
// order, and callers must not rely on it.
//
// An Iterator is a stateful cursor over (bucket, slot) rather than a
// recursively flattened generator, per the teacher's own guidance that the
// latter has historically caused borrowing headaches. It is not safe for
// concurrent use by multiple goroutines.
type Iterator struct {
	db     *DB
	bucket uint32
	slot   uint32
	err    error
	done   bool
}

// Iterate returns a fresh, non-restartable iterator over db.
func (db *DB) Iterate() *Iterator {
	return &Iterator{db: db}
}

// Next advances to the next live record and returns its key and value. ok
// is false once the scan is exhausted or an error has occurred; callers
// must check Err afterward to distinguish the two.
func (it *Iterator) Next() (key, val []byte, ok bool) {
	if it.done || it.err != nil {
		return nil, nil, false
	}
	for it.bucket < numBuckets {
		desc := it.db.root[it.bucket]
		for it.slot < desc.count {
			slot := it.slot
			it.slot++
			entry, err := readIndexEntry(it.db.provider, desc.ptr, slot)
			if err != nil {
				it.err = err
				return nil, nil, false
			}
			if entry.dataPtr == 0 {
				continue
			}
			key, val, err = readRecord(it.db.provider, entry.dataPtr)
			if err != nil {
				it.err = err
				return nil, nil, false
			}
			return key, val, true
		}
		it.bucket++
		it.slot = 0
	}
	it.done = true
	return nil, nil, false
}

// Err returns the first error encountered during iteration, if any.
func (it *Iterator) Err() error { return it.err }
