package community

import (
	"context"
	"testing"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/oneconcern/dsindex/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDatasetPath(t *testing.T) {
	ctx := context.Background()
	fs := buildRepo(t,
		"/repo/foo/foo.py",
		"/repo/nomodule/__init__.py",
		"/repo/other/bar.py",
		"/repo/stray.py",
	)

	for _, toPin := range []struct {
		location string
		expected bool
	}{
		{location: "/repo/foo", expected: true},
		{location: "/repo/nomodule", expected: false},
		{location: "/repo/other", expected: false},
		{location: "/repo/stray.py", expected: false},
		{location: "/repo/missing", expected: false},
	} {
		testCase := toPin
		t.Run(testCase.location, func(t *testing.T) {
			ok, err := IsDatasetPath(ctx, mustPath(t, fs, testCase.location))
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, ok)
		})
	}
}

func TestIsDatasetPathModuleExt(t *testing.T) {
	ctx := context.Background()
	fs := buildRepo(t, "/repo/foo/foo.go")

	e := NewExporter(ModuleExt(".go"))
	ok, err := isDatasetPath(ctx, mustPath(t, fs, "/repo/foo"), e.moduleExt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsDatasetPath(ctx, mustPath(t, fs, "/repo/foo"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDatasetPathError(t *testing.T) {
	fs := buildRepo(t, "/repo/foo/foo.py")

	_, err := IsDatasetPath(context.Background(), flakyPath{Path: mustPath(t, fs, "/repo/foo"), failIsDir: true})
	assert.Equal(t, errRemote, err)
}

func TestListDatasetsSorted(t *testing.T) {
	fs := buildRepo(t,
		"/repo/zeta/zeta.py",
		"/repo/alpha/alpha.py",
		"/repo/mid/mid.py",
		"/repo/Upper/Upper.py",
	)

	datasets, err := ListDatasets(context.Background(), mustPath(t, fs, "/repo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Upper", "alpha", "mid", "zeta"}, names(datasets))
}

func TestListDatasetsIgnoresOthers(t *testing.T) {
	fs := buildRepo(t,
		"/repo/__init__.py",
		"/repo/README.md",
		"/repo/dsA/dsA.py",
		"/repo/dsA/checksums.tsv",
		"/repo/helpers/__init__.py",
		"/repo/renamed/dsB.py",
	)

	datasets, err := ListDatasets(context.Background(), mustPath(t, fs, "/repo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"dsA"}, names(datasets))
	assert.Equal(t, "file:///repo/dsA", datasets[0].String())
}

func TestListDatasetsNotFound(t *testing.T) {
	fs := buildRepo(t, "/repo/dsA/dsA.py")

	_, err := ListDatasets(context.Background(), mustPath(t, fs, "/elsewhere"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
	assert.Contains(t, err.Error(), "file:///elsewhere")
}

func TestListDatasetsRemoteFailures(t *testing.T) {
	ctx := context.Background()
	fs := buildRepo(t, "/repo/dsA/dsA.py")
	root := mustPath(t, fs, "/repo")

	for _, p := range []flakyPath{
		{Path: root, failExists: true},
		{Path: root, failIterdir: true},
		{Path: root, failIsDir: true},
	} {
		_, err := ListDatasets(ctx, p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errRemote), "got %v", err)
		assert.False(t, errors.Is(err, status.ErrNotFound))
	}
}
