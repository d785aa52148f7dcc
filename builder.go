package cdb

import (
	"io"
	"os"
)

// stagedRecord is a key/value pair buffered in memory until WriteTo lays
// out the file. Builder clones caller-owned slices on Insert, following the
// teacher's own cloneBytes/newkv pattern for buffered builder input.
type stagedRecord struct {
	key, val []byte
	hash     uint32
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Builder accumulates key/value pairs and lays them out into a new cdb
// image with WriteTo. Unlike compactindexsized's FKS-based Builder, which
// requires a collision-free key set, Builder here uses the classical cdb
// open-addressing scheme and happily accepts duplicate keys: at read time
// the first one encountered in probe order wins, per the format's defined
// tie-break.
type Builder struct {
	buckets [numBuckets][]stagedRecord
	count   int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Insert buffers a key/value pair for the next WriteTo. key and val are
// copied; the caller may reuse or modify them afterward.
func (b *Builder) Insert(key, val []byte) error {
	h := djbHash(key)
	bucket := bucketOf(h)
	b.buckets[bucket] = append(b.buckets[bucket], stagedRecord{
		key:  cloneBytes(key),
		val:  cloneBytes(val),
		hash: h,
	})
	b.count++
	return nil
}

// Len reports the number of pairs buffered so far, including duplicates.
func (b *Builder) Len() int { return b.count }

// WriteTo lays out the buffered records as a cdb image: starting after the
// space reserved for the root table, every bucket's records followed
// immediately by that bucket's open-addressed hash table (slot count = 2x
// the bucket's occupancy, for a ~50% load factor), and finally the root
// table itself, written once at offset 0.
func (b *Builder) WriteTo(w io.WriterAt) error {
	var root rootTable
	offset := int64(headerSize)

	for bucket := 0; bucket < numBuckets; bucket++ {
		recs := b.buckets[bucket]
		if len(recs) == 0 {
			continue
		}

		type placed struct {
			hash    uint32
			dataPtr uint32
		}
		placedEntries := make([]placed, 0, len(recs))

		for _, r := range recs {
			recBuf := make([]byte, recordHeaderSize+len(r.key)+len(r.val))
			putUint32(recBuf[0:4], uint32(len(r.key)))
			putUint32(recBuf[4:8], uint32(len(r.val)))
			copy(recBuf[recordHeaderSize:], r.key)
			copy(recBuf[recordHeaderSize+len(r.key):], r.val)
			if _, err := w.WriteAt(recBuf, offset); err != nil {
				return ioErrorf("write record: %v", err)
			}
			placedEntries = append(placedEntries, placed{hash: r.hash, dataPtr: uint32(offset)})
			offset += int64(len(recBuf))
		}

		slots := uint32(len(placedEntries)) * 2
		tableBuf := make([]byte, slots*indexEntrySize)
		for _, e := range placedEntries {
			slot := initialSlot(e.hash, slots)
			for {
				off := slot * indexEntrySize
				if getUint32(tableBuf[off+4:off+8]) == 0 {
					putUint32(tableBuf[off:off+4], e.hash)
					putUint32(tableBuf[off+4:off+8], e.dataPtr)
					break
				}
				slot = (slot + 1) % slots
			}
		}
		if _, err := w.WriteAt(tableBuf, offset); err != nil {
			return ioErrorf("write bucket table: %v", err)
		}
		root[bucket] = bucketDesc{ptr: uint32(offset), count: slots}
		offset += int64(len(tableBuf))
	}

	headerBuf := make([]byte, headerSize)
	for i, d := range root {
		off := i * 8
		putUint32(headerBuf[off:off+4], d.ptr)
		putUint32(headerBuf[off+4:off+8], d.count)
	}
	if _, err := w.WriteAt(headerBuf, 0); err != nil {
		return ioErrorf("write root table: %v", err)
	}
	return nil
}

// WriteFile creates (or truncates) the file at path and writes the image
// to it, syncing before close so a subsequent Open sees a complete file.
func (b *Builder) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf("create %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = b.WriteTo(f); err != nil {
		return err
	}
	return f.Sync()
}
