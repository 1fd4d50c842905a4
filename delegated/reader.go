package delegated

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	minRecordFields  = 7
	headerFields     = 7
	summaryFields    = 6
	maxLineBytes     = 1 << 20
	initialLineBytes = 64 << 10
)

// Reader reads records from a delegated-extended stream.
type Reader struct {
	sc        *bufio.Scanner
	line      int
	records   int
	header    *Header
	summaries []Summary
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initialLineBytes), maxLineBytes)
	return &Reader{sc: sc}
}

// Header returns the version line, or nil if none has been read yet.
func (r *Reader) Header() *Header {
	return r.header
}

// Summaries returns the summary lines read so far.
func (r *Reader) Summaries() []Summary {
	return r.summaries
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record. It returns io.EOF when the stream is exhausted.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimRight(r.sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "|")

		// The version line may only precede summaries and records.
		if r.header == nil && r.records == 0 && len(r.summaries) == 0 && isHeader(fields) {
			h, err := parseHeader(fields)
			if err != nil {
				return Record{}, &ParseError{Line: r.line, Reason: "record count is not an integer"}
			}
			r.header = h
			continue
		}

		if isSummary(fields) {
			n, err := strconv.Atoi(fields[4])
			if err != nil {
				return Record{}, &ParseError{Line: r.line, Reason: "summary count is not an integer"}
			}
			r.summaries = append(r.summaries, Summary{Registry: fields[0], Type: fields[2], Count: n})
			continue
		}

		if len(fields) < minRecordFields {
			return Record{}, &ParseError{Line: r.line, Reason: "too few fields"}
		}

		rec := Record{
			Registry: fields[0],
			CC:       fields[1],
			Type:     fields[2],
			Start:    fields[3],
			Value:    fields[4],
			Date:     fields[5],
			Status:   fields[6],
		}
		if len(fields) > 7 {
			rec.OpaqueID = fields[7]
		}
		if len(fields) > 8 {
			rec.Extensions = fields[8:]
		}
		r.records++
		return rec, nil
	}

	if err := r.sc.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

func isHeader(fields []string) bool {
	if len(fields) != headerFields {
		return false
	}
	_, err := strconv.ParseFloat(fields[0], 64)
	return err == nil
}

func parseHeader(fields []string) (*Header, error) {
	n, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, err
	}
	return &Header{
		Version:   fields[0],
		Registry:  fields[1],
		Serial:    fields[2],
		Records:   n,
		StartDate: fields[4],
		EndDate:   fields[5],
		UTCOffset: fields[6],
	}, nil
}

func isSummary(fields []string) bool {
	return len(fields) == summaryFields && fields[1] == "*" && fields[3] == "*" && fields[5] == "summary"
}
