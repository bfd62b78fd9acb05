package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported destination schemes
const (
	SchemeGCS   = "gs"
	SchemeS3    = "s3"
	SchemeLocal = "file"
)

// Location of an object: a bucket and a key for object stores, a path for local files
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

func (l Location) String() string {
	if l.Scheme == SchemeLocal {
		return l.Key
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

// ParseURI parses a destination such as gs://bucket/key, s3://bucket/key,
// file:///path/to/file, file://relative/file or a plain file path.
func ParseURI(dest string) (Location, error) {
	if dest == "" {
		return Location{}, fmt.Errorf("empty destination")
	}
	if !strings.Contains(dest, "://") {
		return Location{Scheme: SchemeLocal, Key: dest}, nil
	}

	u, err := url.Parse(dest)
	if err != nil {
		return Location{}, fmt.Errorf("invalid destination %q: %w", dest, err)
	}
	switch u.Scheme {
	case SchemeLocal:
		// file://out.tsv and file://dir/out.tsv are relative paths
		p := u.Path
		if u.Host != "" && u.Host != "localhost" {
			p = u.Host + u.Path
		}
		if p == "" {
			return Location{}, fmt.Errorf("invalid destination %q: missing path", dest)
		}
		return Location{Scheme: SchemeLocal, Key: p}, nil
	case SchemeGCS, SchemeS3:
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Location{}, fmt.Errorf("invalid destination %q: expected %s://<bucket>/<key>", dest, u.Scheme)
		}
		return Location{Scheme: u.Scheme, Bucket: u.Host, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("invalid destination %q: unsupported scheme %q", dest, u.Scheme)
	}
}
