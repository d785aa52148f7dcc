package cdb

import "io"

// Mode selects which byte provider backs a Database opened with Open.
type Mode int

const (
	// HeapMode loads the whole file into a heap buffer at open time.
	HeapMode Mode = iota
	// MmapMode privately memory-maps the file, read-only.
	MmapMode
	// PositionalMode serves reads from an open file handle via ReadAt.
	PositionalMode
)

type config struct {
	pretouch bool
}

func defaultConfig() config {
	return config{pretouch: true}
}

// Option configures Open. OpenReader takes no options.
type Option func(*config)

// Pretouch controls whether MmapMode sequentially reads the whole mapping
// once at open time to amortize page faults out of the lookup path.
// Enabled by default.
func Pretouch(enabled bool) Option {
	return func(c *config) { c.pretouch = enabled }
}

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// DB is a handle to an open, immutable cdb database. It is safe for
// concurrent use by multiple goroutines: Get and Iterate never mutate
// shared state and the underlying byte provider either shares its buffer
// freely (HeapMode, MmapMode) or serves each ReadAt independently
// (PositionalMode).
type DB struct {
	provider byteProvider
	root     *rootTable
}

// Open opens the cdb file at path using the given Mode.
func Open(path string, mode Mode, opts ...Option) (*DB, error) {
	cfg := defaultConfig()
	cfg.apply(opts)

	var p byteProvider
	var err error
	switch mode {
	case HeapMode:
		p, err = openHeapProviderFromPath(path)
	case MmapMode:
		p, err = openMmapProvider(path, cfg.pretouch)
	case PositionalMode:
		p, err = openFileProvider(path)
	default:
		return nil, ioErrorf("unknown mode %d", mode)
	}
	if err != nil {
		return nil, err
	}
	return openProvider(p)
}

// OpenReader opens a cdb database backed by an arbitrary io.ReaderAt of the
// given size — for example a caller-managed *os.File or an in-memory
// *bytes.Reader. This is the entry point for HeapMode-style in-process
// databases and for tests that never touch disk.
func OpenReader(r io.ReaderAt, size int64) (*DB, error) {
	return openProvider(newReaderAtProvider(r, size))
}

func openProvider(p byteProvider) (*DB, error) {
	root, err := readRootTable(p)
	if err != nil {
		p.close()
		return nil, err
	}
	return &DB{provider: p, root: root}, nil
}

func openHeapProviderFromPath(path string) (*heapProvider, error) {
	buf, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}
	return newHeapProvider(buf), nil
}

// Close releases any resources (file handles, mappings) held open by the
// database. It does not invalidate byte views already returned from HeapMode
// or MmapMode databases sharing the Close'd buffer elsewhere in the process,
// but any PositionalMode read in flight when Close runs may fail.
func (db *DB) Close() error {
	return db.provider.close()
}

// Clone returns an independent DB sharing the same underlying file. For
// HeapMode the returned DB shares the same backing buffer; since a
// heapProvider's Close is a no-op, either DB may be closed freely. For
// MmapMode the clone shares the same mapping, so closing either DB unmaps
// it for both — callers that need independently closable mapped handles
// should call Open twice instead. For PositionalMode, Clone duplicates the
// OS file descriptor so the two DBs can be closed independently, per the
// package's preference for fd duplication over serializing readers behind a
// mutex.
func (db *DB) Clone() (*DB, error) {
	switch p := db.provider.(type) {
	case *fileProvider:
		np, err := p.clone()
		if err != nil {
			return nil, err
		}
		return &DB{provider: np, root: db.root}, nil
	default:
		return &DB{provider: db.provider, root: db.root}, nil
	}
}

// Dump writes every record in db to w in the §4.7 text format,
// terminated by a blank line.
func (db *DB) Dump(w io.Writer) error {
	tw := NewTextWriter(w)
	it := db.Iterate()
	for {
		key, val, ok := it.Next()
		if !ok {
			break
		}
		if err := tw.Write(key, val); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	return tw.Finish()
}
