package community

import (
	"context"
	"fmt"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/oneconcern/dsindex/pkg/repopath"
)

// IsDatasetPath tells if p is a dataset directory, i.e. a directory
// holding a <name>.py module.
func IsDatasetPath(ctx context.Context, p repopath.Path) (bool, error) {
	return isDatasetPath(ctx, p, DefaultModuleExt)
}

// ListDatasets returns the dataset directories found right under p, sorted by name.
//
// It fails with status.ErrNotFound if p does not exist.
func ListDatasets(ctx context.Context, p repopath.Path) ([]repopath.Path, error) {
	return listDatasets(ctx, p, DefaultModuleExt)
}

func isDatasetPath(ctx context.Context, p repopath.Path, ext string) (bool, error) {
	isDir, err := p.IsDir(ctx)
	if err != nil || !isDir {
		return false, err
	}
	return p.Child(p.Name() + ext).Exists(ctx)
}

func listDatasets(ctx context.Context, p repopath.Path, ext string) ([]repopath.Path, error) {
	exists, err := p.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, status.ErrNotFound.Wrap(fmt.Errorf("could not find datasets at %s", p))
	}

	children, err := p.Iterdir(ctx)
	if err != nil {
		return nil, err
	}
	datasets := make([]repopath.Path, 0, len(children))
	for _, child := range children {
		ok, err := isDatasetPath(ctx, child, ext)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", child, err)
		}
		if ok {
			datasets = append(datasets, child)
		}
	}
	repopath.SortByName(datasets)
	return datasets, nil
}
