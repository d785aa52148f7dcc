package cdb

import "os"

func readWholeFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrorf("read %s: %v", path, err)
	}
	return buf, nil
}
