package cdb

import (
	"bufio"
	"fmt"
	"io"
)

// TextReader parses the line-oriented `+klen,vlen:key->value\n` exchange
// format used to dump and restore cdb databases, terminated by a blank
// line. It is a pull-style cursor, mirroring the original cdb_rs
// IterParser, and is not safe for concurrent use by multiple goroutines.
type TextReader struct {
	r      *bufio.Reader
	offset int64
	done   bool
}

// NewTextReader wraps r for text-format parsing.
func NewTextReader(r io.Reader) *TextReader {
	return &TextReader{r: bufio.NewReader(r)}
}

func (t *TextReader) readByte() (byte, error) {
	b, err := t.r.ReadByte()
	if err == nil {
		t.offset++
	}
	return b, err
}

// Next returns the next (key, value) pair, or err == io.EOF once the
// terminating blank line has been consumed. A malformed stream yields a
// ParseErrorDetail carrying the byte offset of the defect.
func (t *TextReader) Next() (key, val []byte, err error) {
	if t.done {
		return nil, nil, io.EOF
	}

	start := t.offset
	b, rerr := t.readByte()
	if rerr != nil {
		if rerr == io.EOF {
			return nil, nil, newParseError(start, "unexpected EOF waiting for record or terminator")
		}
		return nil, nil, rerr
	}
	if b == '\n' {
		t.done = true
		return nil, nil, io.EOF
	}
	if b != '+' {
		return nil, nil, newParseError(start, fmt.Sprintf("malformed header: expected '+', got %q", b))
	}

	klen, err := t.readDecimal(',')
	if err != nil {
		return nil, nil, err
	}
	vlen, err := t.readDecimal(':')
	if err != nil {
		return nil, nil, err
	}

	key = make([]byte, klen)
	if _, err := io.ReadFull(t.r, key); err != nil {
		return nil, nil, newParseError(t.offset, "unexpected EOF reading key")
	}
	t.offset += int64(klen)

	arrow := make([]byte, 2)
	if _, err := io.ReadFull(t.r, arrow); err != nil {
		return nil, nil, newParseError(t.offset, "unexpected EOF reading arrow")
	}
	t.offset += 2
	if arrow[0] != '-' || arrow[1] != '>' {
		return nil, nil, newParseError(t.offset-2, fmt.Sprintf("missing arrow: got %q", arrow))
	}

	val = make([]byte, vlen)
	if _, err := io.ReadFull(t.r, val); err != nil {
		return nil, nil, newParseError(t.offset, "unexpected EOF reading value")
	}
	t.offset += int64(vlen)

	nl, err := t.readByte()
	if err != nil || nl != '\n' {
		return nil, nil, newParseError(t.offset, "missing trailing newline after record")
	}

	return key, val, nil
}

// readDecimal reads ASCII decimal digits up to and including delim, and
// returns the parsed value.
func (t *TextReader) readDecimal(delim byte) (int, error) {
	start := t.offset
	var n int
	var sawDigit bool
	for {
		b, err := t.readByte()
		if err != nil {
			return 0, newParseError(start, "unexpected EOF reading length")
		}
		if b == delim {
			if !sawDigit {
				return 0, newParseError(start, "bad length: no digits before delimiter")
			}
			return n, nil
		}
		if b < '0' || b > '9' {
			return 0, newParseError(start, fmt.Sprintf("bad length: non-decimal byte %q", b))
		}
		sawDigit = true
		n = n*10 + int(b-'0')
	}
}

// TextWriter emits the `+klen,vlen:key->value\n` text format, terminated
// by Finish's blank line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter wraps w for text-format output.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write emits one record.
func (t *TextWriter) Write(key, val []byte) error {
	if _, err := fmt.Fprintf(t.w, "+%d,%d:", len(key), len(val)); err != nil {
		return err
	}
	if _, err := t.w.Write(key); err != nil {
		return err
	}
	if _, err := io.WriteString(t.w, "->"); err != nil {
		return err
	}
	if _, err := t.w.Write(val); err != nil {
		return err
	}
	_, err := io.WriteString(t.w, "\n")
	return err
}

// Finish writes the blank-line terminator.
func (t *TextWriter) Finish() error {
	_, err := io.WriteString(t.w, "\n")
	return err
}
