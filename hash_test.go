package cdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDjbHash_KnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 5381},
		{"a", 177604},
		{"abc", 193409669},
		{"cat", 193416115},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, djbHash([]byte(c.in)), "hash(%q)", c.in)
	}
}

func TestBucketOf_And_InitialSlot(t *testing.T) {
	h := djbHash([]byte("cat"))
	assert.Equal(t, h%256, bucketOf(h))
	assert.Equal(t, (h>>8)%7, initialSlot(h, 7))
}
