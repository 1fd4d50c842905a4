package delegated

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/primeasn/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	rec := Record{Type: "asn", Status: "available"}

	assert.True(t, TypeIs("asn")(rec))
	assert.False(t, TypeIs("ipv4")(rec))
	assert.True(t, StatusIs("available")(rec))
	assert.True(t, All()(rec))
	assert.True(t, FreeASN(rec))
	assert.False(t, FreeASN(Record{Type: "asn", Status: "reserved"}))
	assert.False(t, FreeASN(Record{Type: "ipv6", Status: "available"}))
}

func TestCandidates(t *testing.T) {
	data := testutil.NewDataset("ripencc").
		ASN("", 13, "available").
		ASN("NL", 1877, "allocated").
		Record("", "ipv4", "10.0.0.0", "256", "available").
		ASN("", 4, "available").
		ASN("", 13, "available").
		ASN("", 6, "reserved").
		Bytes()

	got, err := Candidates(NewReader(bytes.NewReader(data)), FreeASN)
	require.NoError(t, err)
	assert.Equal(t, []int{13, 4, 13}, got)
}

func TestCandidates_NonNumericStart(t *testing.T) {
	in := "ripencc||asn|AS7|1||available\n"
	_, err := Candidates(NewReader(strings.NewReader(in)), FreeASN)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
	assert.Contains(t, pe.Reason, "AS7")
}

func TestCandidates_NoMatches(t *testing.T) {
	data := testutil.NewDataset("arin").ASN("US", 701, "assigned").Bytes()

	got, err := Candidates(NewReader(bytes.NewReader(data)), FreeASN)
	require.NoError(t, err)
	assert.Empty(t, got)
}
