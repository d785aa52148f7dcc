package cdb

import "fmt"

// errorKind distinguishes the error taxonomy of package cdb without
// allocating a distinct type per error site.
type errorKind string

func (e errorKind) Error() string { return string(e) }

// IoError marks a failure to read from or map the backing store for a
// reason unrelated to the file's own contents: a permission error, a
// read syscall failure, or a mapping fault. It is never returned for a
// well-formed file, and never for a corrupt one either — a bad offset or
// length is always a FormatError, even though it surfaces as a failed read.
const IoError = errorKind("cdb: i/o error")

// FormatError marks a file that is too short for its own pointers: the root
// table is smaller than 2048 bytes, an index entry's bucket runs past
// end-of-file, or a record's klen/vlen implies a read past end-of-file.
const FormatError = errorKind("cdb: format error")

// ParseError marks a malformed text-format stream. See ParseErrorDetail for
// the byte offset and defect kind.
const ParseError = errorKind("cdb: parse error")

// ParseErrorDetail carries the byte offset and nature of a text-format
// parse failure. errors.Is(err, ParseError) holds for any *ParseErrorDetail.
type ParseErrorDetail struct {
	Offset int64
	Reason string
}

func (e *ParseErrorDetail) Error() string {
	return fmt.Sprintf("cdb: parse error at offset %d: %s", e.Offset, e.Reason)
}

func (e *ParseErrorDetail) Unwrap() error { return ParseError }

func newParseError(offset int64, reason string) error {
	return &ParseErrorDetail{Offset: offset, Reason: reason}
}

func ioErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{IoError}, args...)...)
}

func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{FormatError}, args...)...)
}
