package config

import (
	"testing"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/oneconcern/dsindex/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, content string) string {
	const path = "/etc/dsindex/community-datasets.toml"
	require.NoError(t, fs.MkdirAll("/etc/dsindex", 0700))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0600))
	return path
}

func TestLoadNamespacesDeclaredOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
[Other]
ignored = 'whatever'

[Namespaces]
zeta = 'owner/zrepo/tree/master/datasets'
alpha = 'owner/arepo/tree/main/ds'
"dotted.name" = 'owner/drepo/tree/dev'
mid = 'owner/mrepo/tree/v1/a/b'
`)

	namespaces, err := LoadNamespaces(fs, path)
	require.NoError(t, err)
	assert.Equal(t, []Namespace{
		{Name: "zeta", Location: "owner/zrepo/tree/master/datasets"},
		{Name: "alpha", Location: "owner/arepo/tree/main/ds"},
		{Name: "dotted.name", Location: "owner/drepo/tree/dev"},
		{Name: "mid", Location: "owner/mrepo/tree/v1/a/b"},
	}, namespaces)
}

func TestLoadNamespacesEmptySection(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, "[Namespaces]\n")

	namespaces, err := LoadNamespaces(fs, path)
	require.NoError(t, err)
	assert.Empty(t, namespaces)
}

func TestLoadNamespacesErrors(t *testing.T) {
	for _, toPin := range []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "[Namespaces\nfoo = "},
		{name: "missing section", content: "[Other]\nfoo = 'a/b/tree/c'\n"},
		{name: "section is a value", content: "Namespaces = 'a/b/tree/c'\n"},
		{name: "non string location", content: "[Namespaces]\nfoo = 12\n"},
	} {
		testCase := toPin
		t.Run(testCase.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := writeConfig(t, fs, testCase.content)

			_, err := LoadNamespaces(fs, path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, status.ErrConfig), "got %v", err)
		})
	}
}

func TestLoadNamespacesMissingFile(t *testing.T) {
	_, err := LoadNamespaces(afero.NewMemMapFs(), "/nowhere/community-datasets.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrConfig))
}
