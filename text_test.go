package cdb

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWriterReader_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"one", "1"},
		{"", "novalue-key"},
		{"empty-value", ""},
		{"bin\x00ary", "da\nta"},
	}

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	for _, kv := range pairs {
		require.NoError(t, tw.Write([]byte(kv[0]), []byte(kv[1])))
	}
	require.NoError(t, tw.Finish())

	tr := NewTextReader(&buf)
	var got [][2]string
	for {
		key, val, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, [2]string{string(key), string(val)})
	}
	assert.Equal(t, pairs, got)
}

func TestDump_ProducesParsableText(t *testing.T) {
	pairs := [][2]string{{"a", "1"}, {"b", "2"}}
	db, _, err := buildMem(pairs)
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	require.NoError(t, db.Dump(&buf))

	tr := NewTextReader(&buf)
	count := 0
	for {
		_, _, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, len(pairs), count)
}

func TestTextReader_MissingArrowIsParseError(t *testing.T) {
	tr := NewTextReader(bytes.NewReader([]byte("+1,1:a==b\n\n")))
	_, _, err := tr.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ParseError)
	var detail *ParseErrorDetail
	require.True(t, errors.As(err, &detail))
}

func TestTextReader_BadLengthIsParseError(t *testing.T) {
	tr := NewTextReader(bytes.NewReader([]byte("+x,1:a->b\n\n")))
	_, _, err := tr.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ParseError)
}

func TestTextReader_TruncatedStreamIsParseError(t *testing.T) {
	tr := NewTextReader(bytes.NewReader([]byte("+3,3:ab")))
	_, _, err := tr.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ParseError)
}

func TestTextReader_EmptyStreamIsParseError(t *testing.T) {
	tr := NewTextReader(bytes.NewReader(nil))
	_, _, err := tr.Next()
	assert.ErrorIs(t, err, ParseError)
}

func TestTextReader_OnlyTerminatorIsImmediateEOF(t *testing.T) {
	tr := NewTextReader(bytes.NewReader([]byte("\n")))
	_, _, err := tr.Next()
	assert.Equal(t, io.EOF, err)
}
