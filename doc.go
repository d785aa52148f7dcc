// Package cdb reads (and writes) constant databases compatible with D. J.
// Bernstein's cdb file format: http://cr.yp.to/cdb.html.
//
// # Design
//
// A cdb file is a fixed 2048-byte root table of 256 (pointer, count) bucket
// descriptors, followed by records and per-bucket hash tables interleaved in
// whatever order the writer chose. Looking up a key hashes it, picks one of
// the 256 buckets, and linearly probes that bucket's hash table starting at
// a hash-derived slot until the key is found or an empty slot is hit.
//
// Once written, a cdb file is never mutated. This package only supports
// opening an existing file for lookups and iteration (via Open), and
// building a brand new file from scratch (via Builder). There is no
// in-place update.
//
// # Backings
//
// Open accepts a Mode selecting how the file's bytes are served: fully
// loaded onto the heap, privately memory-mapped, or read positionally from
// an open file handle. All three present identical semantics to callers;
// Get and Iterate never branch on which one is in use.
package cdb
