package cdb

import "encoding/binary"

// getUint32 decodes a little-endian uint32 at the front of b.
// Centralized here, per the teacher's own header/record readers, so byte
// arithmetic never leaks into the lookup engine itself.
func getUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func putUint32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
