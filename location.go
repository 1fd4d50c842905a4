package primeasn

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/primeasn/blobstore"
)

// DefaultSource is the dataset read when no source is configured: the RIPE NCC
// delegated-extended statistics of 2021-11-22.
const DefaultSource = "https://ftp.ripe.net/pub/stats/ripencc/2021/delegated-ripencc-extended-20211122.bz2"

// Location is a parsed dataset or report address.
//
// Supported forms:
//
//	https://host/path   Bucket "https://host", Key "path"
//	https://u:p@host/f  Bucket "https://u:p@host", Key "f"
//	s3://bucket/key     Bucket "bucket", Key "key"
//	minio://bucket/key  Bucket "bucket", Key "key"
//	mem://bucket/key    Bucket "bucket", Key "key"
//	file:///abs/path    Key "/abs/path"
//	relative/or/abs     Key as given, scheme "file"
type Location struct {
	Scheme string
	Bucket string
	Key    string
	raw    string
}

// String returns the location as it was given, with any password redacted.
// It is safe to log and to record in reports.
func (l Location) String() string { return l.raw }

// ParseLocation parses s into a Location.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	if !strings.Contains(s, "://") {
		return Location{Scheme: "file", Key: s, raw: s}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Location{}, fmt.Errorf("location %q: %w", s, err)
	}

	loc := Location{Scheme: strings.ToLower(u.Scheme), raw: s}
	switch loc.Scheme {
	case "file":
		if u.Host != "" && u.Host != "localhost" {
			return Location{}, fmt.Errorf("location %q: remote file host %q", s, u.Host)
		}
		loc.Key = u.Path
	case "http", "https":
		loc.Bucket = loc.Scheme + "://" + u.Host
		if u.User != nil {
			// Credentials travel in Bucket for basic auth; String stays redacted.
			loc.Bucket = loc.Scheme + "://" + u.User.String() + "@" + u.Host
			loc.raw = u.Redacted()
		}
		loc.Key = strings.TrimPrefix(u.RequestURI(), "/")
	default:
		loc.Bucket = u.Host
		loc.Key = strings.TrimPrefix(u.Path, "/")
	}

	if loc.Key == "" {
		return Location{}, fmt.Errorf("location %q: missing object key", s)
	}
	return loc, nil
}

// StoreFactory returns the store serving a location's bucket.
type StoreFactory func(ctx context.Context, loc Location) (blobstore.Store, error)

// StaticStore serves every location of a scheme from one store.
func StaticStore(s blobstore.Store) StoreFactory {
	return func(context.Context, Location) (blobstore.Store, error) {
		return s, nil
	}
}

func defaultStores() map[string]StoreFactory {
	local := blobstore.NewLocalStore("")
	http := func(_ context.Context, loc Location) (blobstore.Store, error) {
		return blobstore.NewHTTPStore(loc.Bucket), nil
	}
	return map[string]StoreFactory{
		"file":  StaticStore(local),
		"http":  http,
		"https": http,
	}
}
