// Package config reads the namespaces table which tells where
// community datasets are hosted.
//
// The file is TOML:
//
//	[Namespaces]
//	kaggle = 'tensorflow/datasets/tree/master/community/kaggle'
//	huggingface = 'huggingface/datasets/tree/main/datasets'
//
// Other sections are ignored.
package config

import (
	"fmt"
	"sort"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/pelletier/go-toml"
	"github.com/spf13/afero"
)

// NamespacesSection is the TOML table holding the namespace locations
const NamespacesSection = "Namespaces"

// Namespace maps a namespace name to the repository location of its datasets
type Namespace struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
}

// LoadNamespaces parses the config file at path and returns its namespaces,
// in the order they are declared.
func LoadNamespaces(fs afero.Fs, path string) ([]Namespace, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, status.ErrConfig.Wrap(err)
	}
	defer f.Close()

	tree, err := toml.LoadReader(f)
	if err != nil {
		return nil, status.ErrConfig.Wrap(fmt.Errorf("parsing %s: %w", path, err))
	}
	return namespacesFromTree(path, tree)
}

func namespacesFromTree(path string, tree *toml.Tree) ([]Namespace, error) {
	raw := tree.GetPath([]string{NamespacesSection})
	if raw == nil {
		return nil, status.ErrConfig.Wrap(fmt.Errorf("%s: missing [%s] section", path, NamespacesSection))
	}
	section, ok := raw.(*toml.Tree)
	if !ok {
		return nil, status.ErrConfig.Wrap(fmt.Errorf("%s: %s is not a table", path, NamespacesSection))
	}

	type positioned struct {
		Namespace
		line, col int
	}
	keys := section.Keys()
	entries := make([]positioned, 0, len(keys))
	for _, key := range keys {
		location, ok := section.GetPath([]string{key}).(string)
		if !ok {
			return nil, status.ErrConfig.Wrap(fmt.Errorf("%s: namespace %q must be a string location", path, key))
		}
		pos := section.GetPositionPath([]string{key})
		entries = append(entries, positioned{
			Namespace: Namespace{Name: key, Location: location},
			line:      pos.Line,
			col:       pos.Col,
		})
	}

	// trees are maps: restore the declared order from key positions
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].line != entries[j].line {
			return entries[i].line < entries[j].line
		}
		return entries[i].col < entries[j].col
	})

	namespaces := make([]Namespace, 0, len(entries))
	for _, e := range entries {
		namespaces = append(namespaces, e.Namespace)
	}
	return namespaces, nil
}
