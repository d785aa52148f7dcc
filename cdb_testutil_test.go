package cdb

// memWriterAt is an in-memory io.WriterAt/io.ReaderAt used by tests to
// build and immediately open a database without touching disk.
type memWriterAt struct {
	buf []byte
}

func (m *memWriterAt) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[off:end], p)
	return len(p), nil
}

func (m *memWriterAt) ReadAt(p []byte, off int64) (int, error) {
	n := copy(p, m.buf[off:])
	return n, nil
}

func (m *memWriterAt) Size() int64 { return int64(len(m.buf)) }

// buildMem constructs a database in memory from the given pairs, inserted
// in order, and returns an opened *DB plus the raw bytes of the image.
func buildMem(pairs [][2]string) (*DB, []byte, error) {
	b := NewBuilder()
	for _, kv := range pairs {
		if err := b.Insert([]byte(kv[0]), []byte(kv[1])); err != nil {
			return nil, nil, err
		}
	}
	w := &memWriterAt{}
	if err := b.WriteTo(w); err != nil {
		return nil, nil, err
	}
	db, err := OpenReader(w, w.Size())
	if err != nil {
		return nil, nil, err
	}
	return db, w.buf, nil
}
