package community

import (
	"context"
	"errors"
	"io"
	"path"
	"testing"

	"github.com/oneconcern/dsindex/pkg/repopath"
	"github.com/oneconcern/dsindex/pkg/repopath/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// buildRepo lays out files on an in-memory file system
func buildRepo(t testing.TB, files ...string) afero.Fs {
	fs := afero.NewMemMapFs()
	for _, file := range files {
		require.NoError(t, fs.MkdirAll(path.Dir(file), 0700))
		require.NoError(t, afero.WriteFile(fs, file, []byte("# dataset\n"), 0600))
	}
	return fs
}

func mustPath(t testing.TB, fs afero.Fs, location string) repopath.Path {
	p, err := localfs.New(fs, location)
	require.NoError(t, err)
	return p
}

func names(paths []repopath.Path) []string {
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		res = append(res, p.Name())
	}
	return res
}

var errRemote = errors.New("remote unavailable")

// flakyPath fails the listed operations
type flakyPath struct {
	repopath.Path
	failExists  bool
	failIsDir   bool
	failIterdir bool
}

func (f flakyPath) Exists(ctx context.Context) (bool, error) {
	if f.failExists {
		return false, errRemote
	}
	return f.Path.Exists(ctx)
}

func (f flakyPath) IsDir(ctx context.Context) (bool, error) {
	if f.failIsDir {
		return false, errRemote
	}
	return f.Path.IsDir(ctx)
}

func (f flakyPath) Iterdir(ctx context.Context) ([]repopath.Path, error) {
	if f.failIterdir {
		return nil, errRemote
	}
	children, err := f.Path.Iterdir(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]repopath.Path, 0, len(children))
	for _, child := range children {
		res = append(res, flakyPath{Path: child, failIsDir: f.failIsDir})
	}
	return res, nil
}

// failingStore hands out writers which fail on write or close
type failingStore struct {
	failOpen  bool
	failWrite bool
	failClose bool
	closed    int
}

type failingWriter struct {
	store *failingStore
}

var errDisk = errors.New("disk full")

func (w failingWriter) Write(p []byte) (int, error) {
	if w.store.failWrite {
		return 0, errDisk
	}
	return len(p), nil
}

func (w failingWriter) Close() error {
	w.store.closed++
	if w.store.failClose {
		return errDisk
	}
	return nil
}

func (s *failingStore) String() string { return "failing" }

func (s *failingStore) Has(context.Context, string) (bool, error) { return false, errDisk }

func (s *failingStore) NewWriter(context.Context, string) (io.WriteCloser, error) {
	if s.failOpen {
		return nil, errDisk
	}
	return failingWriter{store: s}, nil
}
