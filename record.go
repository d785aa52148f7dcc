package cdb

// recordHeaderSize is the 8-byte (klen, vlen) header preceding every
// stored key/value pair.
const recordHeaderSize = 8

// readRecord returns the key and value byte views stored at dataPtr, after
// decoding the (klen, vlen) header there. No copying beyond whatever the
// byte provider itself imposes.
func readRecord(p byteProvider, dataPtr uint32) (key, val []byte, err error) {
	hdr, err := p.slice(int64(dataPtr), int64(dataPtr)+recordHeaderSize)
	if err != nil {
		return nil, nil, err
	}
	klen := getUint32(hdr[0:4])
	vlen := getUint32(hdr[4:8])

	kStart := int64(dataPtr) + recordHeaderSize
	kEnd := kStart + int64(klen)
	key, err = p.slice(kStart, kEnd)
	if err != nil {
		return nil, nil, err
	}
	vEnd := kEnd + int64(vlen)
	val, err = p.slice(kEnd, vEnd)
	if err != nil {
		return nil, nil, err
	}
	return key, val, nil
}

// readKeyLen reads just the (klen, vlen) header at dataPtr, for the common
// case where the lookup engine wants to reject a candidate by key length
// before reading its key and value.
func readKeyLen(p byteProvider, dataPtr uint32) (klen, vlen uint32, err error) {
	hdr, err := p.slice(int64(dataPtr), int64(dataPtr)+recordHeaderSize)
	if err != nil {
		return 0, 0, err
	}
	return getUint32(hdr[0:4]), getUint32(hdr[4:8]), nil
}
