package github

import (
	"fmt"
	"strings"
)

// Scheme prefixes the string form of GitHub paths
const Scheme = "github"

// Location identifies a path at a given ref of a GitHub repository
type Location struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// ParseLocation parses a location of the form <owner>/<repo>/tree/<ref>[/<path>].
//
// A leading "github://" or "/" is accepted. The ref is a single path element:
// branches containing a slash are not supported.
func ParseLocation(location string) (Location, error) {
	trimmed := strings.TrimPrefix(location, Scheme+"://")
	trimmed = strings.Trim(trimmed, "/")

	parts := strings.SplitN(trimmed, "/", 5)
	if len(parts) < 4 || parts[2] != "tree" {
		return Location{}, fmt.Errorf("invalid github location %q: expected <owner>/<repo>/tree/<ref>[/<path>]", location)
	}
	loc := Location{
		Owner: parts[0],
		Repo:  parts[1],
		Ref:   parts[3],
	}
	if loc.Owner == "" || loc.Repo == "" || loc.Ref == "" {
		return Location{}, fmt.Errorf("invalid github location %q: empty owner, repo or ref", location)
	}
	if len(parts) == 5 {
		loc.Path = cleanPath(parts[4])
	}
	return loc, nil
}

func (l Location) String() string {
	s := Scheme + "://" + l.Owner + "/" + l.Repo + "/tree/" + l.Ref
	if l.Path != "" {
		s += "/" + l.Path
	}
	return s
}

// Name is the last element of the path, or the repository name at the root
func (l Location) Name() string {
	if l.Path == "" {
		return l.Repo
	}
	if idx := strings.LastIndex(l.Path, "/"); idx >= 0 {
		return l.Path[idx+1:]
	}
	return l.Path
}

// Join returns the location of an entry below l
func (l Location) Join(name string) Location {
	child := l
	child.Path = cleanPath(l.Path + "/" + name)
	return child
}

func cleanPath(p string) string {
	elems := strings.Split(p, "/")
	kept := elems[:0]
	for _, e := range elems {
		if e != "" && e != "." {
			kept = append(kept, e)
		}
	}
	return strings.Join(kept, "/")
}
