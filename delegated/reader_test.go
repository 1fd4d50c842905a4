package delegated

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hupe1980/primeasn/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []Record {
	t.Helper()
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestReader(t *testing.T) {
	data := testutil.NewDataset("ripencc").
		WithComments().
		ASN("NL", 1877, "allocated").
		ASN("", 7, "available").
		Record("DE", "ipv4", "193.0.0.0", "2048", "allocated").
		Bytes()

	r := NewReader(bytes.NewReader(data))
	recs := readAll(t, r)

	require.Len(t, recs, 3)
	assert.Equal(t, Record{
		Registry: "ripencc",
		CC:       "NL",
		Type:     "asn",
		Start:    "1877",
		Value:    "1",
		Date:     "20211122",
		Status:   "allocated",
		OpaqueID: "1",
	}, recs[0])
	assert.Equal(t, "available", recs[1].Status)
	assert.Equal(t, "ipv4", recs[2].Type)

	require.NotNil(t, r.Header())
	assert.Equal(t, "2.3", r.Header().Version)
	assert.Equal(t, "ripencc", r.Header().Registry)
	assert.Equal(t, 3, r.Header().Records)

	assert.Equal(t, []Summary{
		{Registry: "ripencc", Type: "asn", Count: 2},
		{Registry: "ripencc", Type: "ipv4", Count: 1},
		{Registry: "ripencc", Type: "ipv6", Count: 0},
	}, r.Summaries())
}

func TestReader_Extensions(t *testing.T) {
	in := "ripencc|FR|asn|2200|1|19930901|allocated|abc|e-stats|x\r\n"
	recs := readAll(t, NewReader(strings.NewReader(in)))

	require.Len(t, recs, 1)
	assert.Equal(t, "abc", recs[0].OpaqueID)
	assert.Equal(t, []string{"e-stats", "x"}, recs[0].Extensions)
	assert.Equal(t, "allocated", recs[0].Status)
}

func TestReader_HeaderOnlyFirst(t *testing.T) {
	// a numeric-looking 7-field line after records is a record, not a header
	in := "ripencc|NL|asn|1|1||available\n2|x|y|3|a|b|c\n"
	recs := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, recs, 2)
	assert.Equal(t, "2", recs[1].Registry)
}

func TestReader_Malformed(t *testing.T) {
	in := "2.3|ripencc|1|1|19700101|20211122|+0100\nripencc|NL|asn\n"
	r := NewReader(strings.NewReader(in))

	_, err := r.Next()
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "too few fields")
}

func TestReader_BadSummaryCount(t *testing.T) {
	r := NewReader(strings.NewReader("ripencc|*|asn|*|many|summary\n"))
	_, err := r.Next()
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
}

func TestReader_Empty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Nil(t, r.Header())
}
