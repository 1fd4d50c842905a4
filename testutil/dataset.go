package testutil

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Dataset builds a delegated-extended file in memory.
type Dataset struct {
	registry string
	records  []string
	summary  map[string]int
	comments bool
}

// NewDataset creates an empty dataset for the given registry (e.g. "ripencc").
func NewDataset(registry string) *Dataset {
	return &Dataset{
		registry: registry,
		summary:  make(map[string]int),
	}
}

// WithComments prepends a comment line to the output.
func (d *Dataset) WithComments() *Dataset {
	d.comments = true
	return d
}

// ASN appends a single-number asn record.
func (d *Dataset) ASN(cc string, start int, status string) *Dataset {
	return d.Record(cc, "asn", strconv.Itoa(start), "1", status)
}

// Record appends an arbitrary record line.
func (d *Dataset) Record(cc, typ, start, value, status string) *Dataset {
	d.summary[typ]++
	date := "20211122"
	if status == "available" || status == "reserved" {
		date = ""
	}
	d.records = append(d.records, strings.Join([]string{
		d.registry, cc, typ, start, value, date, status,
		fmt.Sprintf("%x", len(d.records)+1),
	}, "|"))
	return d
}

// Raw appends a line verbatim.
func (d *Dataset) Raw(line string) *Dataset {
	d.records = append(d.records, line)
	return d
}

// Bytes renders the dataset: optional comment, version line, summary lines and records.
func (d *Dataset) Bytes() []byte {
	var buf bytes.Buffer
	if d.comments {
		buf.WriteString("# generated test dataset\n")
	}
	fmt.Fprintf(&buf, "2.3|%s|1637535599|%d|19700101|20211122|+0100\n", d.registry, len(d.records))
	for _, typ := range []string{"asn", "ipv4", "ipv6"} {
		fmt.Fprintf(&buf, "%s|*|%s|*|%d|summary\n", d.registry, typ, d.summary[typ])
	}
	for _, r := range d.records {
		buf.WriteString(r)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
