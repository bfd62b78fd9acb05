// Package localfs serves repository paths from a directory tree,
// e.g. a local checkout of a repository.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/oneconcern/dsindex/pkg/repopath"
	"github.com/spf13/afero"
)

// Scheme prefixes local locations in the namespaces config: file:///srv/mirror/datasets
const Scheme = "file"

var _ repopath.Path = localPath{}

type localPath struct {
	fs   afero.Fs
	path string
}

// New returns the path of a directory on fs.
//
// The location may be prefixed by file://. A nil fs means the OS file system.
func New(fs afero.Fs, location string) (repopath.Path, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	p := strings.TrimPrefix(location, Scheme+"://")
	if p == "" {
		return nil, fmt.Errorf("empty local location %q", location)
	}
	return localPath{fs: fs, path: path.Clean(p)}, nil
}

// Resolver builds local paths on fs
func Resolver(fs afero.Fs) repopath.Resolver {
	return func(location string) (repopath.Path, error) {
		return New(fs, location)
	}
}

func (l localPath) Name() string {
	return path.Base(l.path)
}

func (l localPath) String() string {
	return Scheme + "://" + l.path
}

func (l localPath) Exists(context.Context) (bool, error) {
	_, err := l.fs.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l localPath) IsDir(context.Context) (bool, error) {
	fi, err := l.fs.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

func (l localPath) Iterdir(context.Context) ([]repopath.Path, error) {
	infos, err := afero.ReadDir(l.fs, l.path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", l, err)
	}
	children := make([]repopath.Path, 0, len(infos))
	for _, fi := range infos {
		children = append(children, l.Child(fi.Name()))
	}
	return children, nil
}

func (l localPath) Child(name string) repopath.Path {
	return localPath{fs: l.fs, path: path.Join(l.path, name)}
}
