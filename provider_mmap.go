package cdb

import (
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/mmap"
)

// mmapProvider holds a private, read-only memory map of the file. Each slice
// is copied out of the map into a freshly allocated buffer; slices are not
// views into the mapping.
type mmapProvider struct {
	r *mmap.ReaderAt
}

func openMmapProvider(path string, pretouch bool) (*mmapProvider, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, ioErrorf("mmap %s: %v", path, err)
	}
	p := &mmapProvider{r: r}
	if pretouch {
		p.warmUp(path)
	}
	return p, nil
}

// warmUp sequentially reads the whole mapping once to fault in every page
// up front, out of the latency-sensitive lookup path. Computing a checksum
// while doing so is purely diagnostic: it forces the read to actually touch
// every byte rather than let the compiler discard a bytes-only scan, and
// gives operators a value to compare across replicas of the same file.
func (p *mmapProvider) warmUp(path string) {
	start := time.Now()
	const chunk = 1 << 20
	buf := make([]byte, chunk)
	h := xxhash.New()
	total := p.r.Len()
	var n int
	for off := 0; off < total; off += n {
		want := chunk
		if remaining := total - off; remaining < want {
			want = remaining
		}
		var err error
		n, err = p.r.ReadAt(buf[:want], int64(off))
		if n > 0 {
			h.Write(buf[:n])
		}
		if err != nil {
			slog.Warn("cdb: mmap pretouch read failed", "file", path, "offset", off, "error", err)
			return
		}
	}
	slog.Debug("cdb: mmap pretouch complete", "file", path, "bytes", total, "checksum", h.Sum64(), "duration", time.Since(start))
}

func (p *mmapProvider) slice(start, end int64) ([]byte, error) {
	if start == end {
		return nil, nil
	}
	if start < 0 || end < start {
		return nil, ioErrorf("invalid range [%d, %d)", start, end)
	}
	if end > int64(p.r.Len()) {
		return nil, formatErrorf("range [%d, %d) past end of %d-byte mapping", start, end, p.r.Len())
	}
	buf := make([]byte, end-start)
	if _, err := p.r.ReadAt(buf, start); err != nil {
		return nil, ioErrorf("mmap read at %d: %v", start, err)
	}
	return buf, nil
}

func (p *mmapProvider) size() int64 { return int64(p.r.Len()) }

func (p *mmapProvider) close() error {
	if err := p.r.Close(); err != nil {
		return ioErrorf("mmap close: %v", err)
	}
	return nil
}
