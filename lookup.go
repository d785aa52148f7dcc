package cdb

import "bytes"

// indexEntrySize is the 8-byte (hash, data_ptr) pair stored in a bucket's
// hash table.
const indexEntrySize = 8

// indexEntry is one slot of a bucket's hash table. dataPtr == 0 is the
// open-addressing sentinel for an empty slot.
type indexEntry struct {
	hash    uint32
	dataPtr uint32
}

func readIndexEntry(p byteProvider, bucketPtr uint32, slot uint32) (indexEntry, error) {
	off := int64(bucketPtr) + int64(slot)*indexEntrySize
	buf, err := p.slice(off, off+indexEntrySize)
	if err != nil {
		return indexEntry{}, err
	}
	return indexEntry{
		hash:    getUint32(buf[0:4]),
		dataPtr: getUint32(buf[4:8]),
	}, nil
}

// probe is a lazy, finite sequence over a bucket's slots, starting at the
// hash-derived slot and wrapping modulo count. Exposing it as its own type
// isolates probe order from the key-comparison logic in Get, and makes the
// order independently testable.
type probe struct {
	bucketPtr uint32
	count     uint32
	start     uint32
	i         uint32
}

func newProbe(bucketPtr, count, start uint32) *probe {
	return &probe{bucketPtr: bucketPtr, count: count, start: start}
}

// next returns the slot index for this step of the probe, and whether the
// probe has any steps left (it yields exactly count slots before ending).
func (pr *probe) next() (slot uint32, ok bool) {
	if pr.i >= pr.count {
		return 0, false
	}
	slot = (pr.start + pr.i) % pr.count
	pr.i++
	return slot, true
}

// Get looks up key and returns its value, or (nil, nil) on a miss. An
// IoError or FormatError from the byte provider is returned verbatim; the
// only locally recovered condition is a candidate whose stored key differs
// from the query key, which continues the probe.
func (db *DB) Get(key []byte) ([]byte, error) {
	h := djbHash(key)
	desc := db.root[bucketOf(h)]
	if desc.count == 0 {
		return nil, nil
	}

	pr := newProbe(desc.ptr, desc.count, initialSlot(h, desc.count))
	for {
		slot, ok := pr.next()
		if !ok {
			return nil, nil
		}
		entry, err := readIndexEntry(db.provider, desc.ptr, slot)
		if err != nil {
			return nil, err
		}
		if entry.dataPtr == 0 {
			// Empty slot: the writer never leaves a hole before a live
			// entry in a bucket, so the key was never inserted.
			return nil, nil
		}
		if entry.hash != h {
			continue
		}
		klen, _, err := readKeyLen(db.provider, entry.dataPtr)
		if err != nil {
			return nil, err
		}
		if klen != uint32(len(key)) {
			continue
		}
		candKey, val, err := readRecord(db.provider, entry.dataPtr)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(candKey, key) {
			if val == nil {
				// An empty stored value is a hit, not a miss.
				val = []byte{}
			}
			return val, nil
		}
	}
}
