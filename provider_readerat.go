package cdb

import "io"

// readerAtProvider adapts an arbitrary io.ReaderAt (for example a caller's
// own *os.File, or an in-memory *bytes.Reader) to byteProvider, for use with
// OpenReader. Unlike fileProvider it never advises the kernel or owns the
// underlying resource: the caller keeps responsibility for closing it.
type readerAtProvider struct {
	r        io.ReaderAt
	fileSize int64
}

func newReaderAtProvider(r io.ReaderAt, size int64) *readerAtProvider {
	return &readerAtProvider{r: r, fileSize: size}
}

func (p *readerAtProvider) slice(start, end int64) ([]byte, error) {
	if start == end {
		return nil, nil
	}
	if start < 0 || end < start {
		return nil, ioErrorf("invalid range [%d, %d)", start, end)
	}
	if end > p.fileSize {
		return nil, formatErrorf("range [%d, %d) past end of %d-byte reader", start, end, p.fileSize)
	}
	buf := make([]byte, end-start)
	if _, err := p.r.ReadAt(buf, start); err != nil {
		return nil, ioErrorf("read at %d: %v", start, err)
	}
	return buf, nil
}

func (p *readerAtProvider) size() int64 { return p.fileSize }

func (p *readerAtProvider) close() error { return nil }
