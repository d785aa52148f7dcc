package cdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_LenCountsDuplicates(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]byte("a"), []byte("1")))
	require.NoError(t, b.Insert([]byte("a"), []byte("2")))
	assert.Equal(t, 2, b.Len())
}

func TestBuilder_InsertCopiesCallerSlices(t *testing.T) {
	b := NewBuilder()
	key := []byte("mutable")
	val := []byte("also-mutable")
	require.NoError(t, b.Insert(key, val))
	key[0] = 'X'
	val[0] = 'Y'

	w := &memWriterAt{}
	require.NoError(t, b.WriteTo(w))
	db, err := OpenReader(w, w.Size())
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get([]byte("mutable"))
	require.NoError(t, err)
	assert.Equal(t, "also-mutable", string(got))
}

func TestBuilder_WriteToLayoutHasRootTableFirst(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]byte("k"), []byte("v")))
	w := &memWriterAt{}
	require.NoError(t, b.WriteTo(w))
	assert.GreaterOrEqual(t, w.Size(), int64(headerSize))
}

func TestBuilder_EmptyBuilderProducesBareHeader(t *testing.T) {
	b := NewBuilder()
	w := &memWriterAt{}
	require.NoError(t, b.WriteTo(w))
	assert.Equal(t, int64(headerSize), w.Size())

	db, err := OpenReader(w, w.Size())
	require.NoError(t, err)
	defer db.Close()
	for _, desc := range db.root {
		assert.Equal(t, uint32(0), desc.count)
	}
}
