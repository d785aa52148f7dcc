package cdb

// byteProvider serves raw byte ranges from the database file. It is the one
// seam the lookup engine depends on, satisfied by a heap buffer, a private
// memory map, or a positional-read file handle; Get and the iterator never
// branch on which backing is in use.
type byteProvider interface {
	// slice returns the end-start bytes starting at absolute file offset
	// start. start == end returns an empty slice without touching the
	// backing store. Fails with FormatError if the range runs past the
	// known size of the backing store (a corrupt length field pointing
	// past EOF), or IoError if a read within bounds fails for some other
	// reason.
	slice(start, end int64) ([]byte, error)

	// size reports the total length of the backing store.
	size() int64

	// close releases any resources (file handles, mappings) held by the
	// provider.
	close() error
}

// heapProvider holds the whole file in memory. Slices are zero-copy
// sub-slices that share the backing array, same as the original
// SliceFactory::HeapStorage.
type heapProvider struct {
	buf []byte
}

func newHeapProvider(buf []byte) *heapProvider {
	return &heapProvider{buf: buf}
}

func (p *heapProvider) slice(start, end int64) ([]byte, error) {
	if start == end {
		return nil, nil
	}
	if start < 0 || end < start {
		return nil, ioErrorf("invalid range [%d, %d)", start, end)
	}
	if end > int64(len(p.buf)) {
		return nil, formatErrorf("range [%d, %d) past end of %d-byte buffer", start, end, len(p.buf))
	}
	return p.buf[start:end], nil
}

func (p *heapProvider) size() int64 { return int64(len(p.buf)) }

func (p *heapProvider) close() error { return nil }
