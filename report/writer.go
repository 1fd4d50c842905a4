package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/primeasn/codec"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatRoaring Format = "roaring"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatRoaring:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, json or roaring)", s)
	}
}

// Title is the first line of the text format.
const Title = "Prime ASNs that are available:"

// Write renders r to w. c selects the JSON codec; nil uses codec.Default.
func Write(w io.Writer, f Format, r *Report, c codec.Codec) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		if c == nil {
			c = codec.Default
		}
		b, err := c.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode report (%s): %w", c.Name(), err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatRoaring:
		bm, err := r.Bitmap()
		if err != nil {
			return err
		}
		_, err = bm.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

// Encode renders r into a byte slice.
func Encode(f Format, r *Report, c codec.Codec) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, r, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeText(w io.Writer, r *Report) error {
	b := make([]byte, 0, len(Title)+2+8*len(r.Primes))
	b = append(b, Title...)
	b = append(b, '\n', '[')
	for i, p := range r.Primes {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = strconv.AppendInt(b, int64(p), 10)
	}
	b = append(b, ']', '\n')
	_, err := w.Write(b)
	return err
}
