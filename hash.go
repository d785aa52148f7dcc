package cdb

// numBuckets is the fixed number of root-table slots (and therefore
// secondary hash tables) in every cdb file.
const numBuckets = 256

// startingHash is djb's arbitrary seed value for the "times 33 xor" hash.
const startingHash uint32 = 5381

// djbHash computes D. J. Bernstein's "times 33 xor" hash used throughout the
// cdb format. All arithmetic is modular on uint32 — Go's unsigned integers
// wrap on overflow natively, so no explicit wrapping calls are needed.
func djbHash(b []byte) uint32 {
	h := startingHash
	for _, c := range b {
		h = ((h << 5) + h) ^ uint32(c)
	}
	return h
}

// bucketOf returns the root-table index for a hash.
func bucketOf(h uint32) uint32 { return h % numBuckets }

// initialSlot returns the first slot to probe within a bucket of the given
// size. Undefined (and unused) when count == 0.
func initialSlot(h uint32, count uint32) uint32 { return (h >> 8) % count }
