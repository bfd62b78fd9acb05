// Package repopath describes paths inside source-control repositories,
// independently of the host serving them.
//
// Implementations live in sub-packages:
//   - github: GitHub contents API
//   - localfs: directory trees on an afero file system
package repopath

import (
	"context"
	"sort"
)

// Path is a file or directory within a repository.
//
// Name and String never reach the network. Exists, IsDir and Iterdir may.
type Path interface {
	// Name is the last element of the path
	Name() string

	// String is the full location of the path, as recorded in the index
	String() string

	Exists(context.Context) (bool, error)
	IsDir(context.Context) (bool, error)

	// Iterdir lists the immediate children of a directory
	Iterdir(context.Context) ([]Path, error)

	// Child builds the path of an entry below this one. The entry may not exist.
	Child(name string) Path
}

// SortByName sorts paths by name, using plain string ordering
func SortByName(paths []Path) {
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Name() < paths[j].Name()
	})
}
