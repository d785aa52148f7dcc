package cdb

// headerSize is the fixed size of the root table: 256 entries of 8 bytes
// each (a uint32 pointer and a uint32 count).
const headerSize = numBuckets * 8

// bucketDesc is one root-table entry: the file offset and slot count of a
// secondary hash table. A zero count means the bucket holds no keys.
type bucketDesc struct {
	ptr   uint32
	count uint32
}

// rootTable is the fixed-size, never-grown array of bucket descriptors held
// for the life of an open database.
type rootTable [numBuckets]bucketDesc

// readRootTable decodes the 256 (ptr, count) pairs at the front of the
// file. Fails with FormatError if fewer than headerSize bytes are present.
func readRootTable(p byteProvider) (*rootTable, error) {
	buf, err := p.slice(0, headerSize)
	if err != nil {
		return nil, err
	}
	var table rootTable
	for i := range table {
		off := i * 8
		table[i] = bucketDesc{
			ptr:   getUint32(buf[off : off+4]),
			count: getUint32(buf[off+4 : off+8]),
		}
	}
	return &table, nil
}
