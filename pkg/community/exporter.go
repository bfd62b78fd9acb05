package community

import (
	"context"
	"fmt"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/oneconcern/dsindex/pkg/config"
	"github.com/oneconcern/dsindex/pkg/repopath"
	"github.com/oneconcern/dsindex/pkg/storage"
	"go.uber.org/zap"
)

// NamespaceDatasets holds the datasets found for a namespace, sorted by name
type NamespaceDatasets struct {
	Namespace string
	Datasets  []repopath.Path
}

// DatasetDict lists datasets per namespace, in config order
type DatasetDict []NamespaceDatasets

// Len is the total number of datasets
func (d DatasetDict) Len() int {
	var n int
	for _, ns := range d {
		n += len(ns.Datasets)
	}
	return n
}

// Exporter finds community datasets and saves them as an index
type Exporter struct {
	l         *zap.Logger
	resolve   repopath.Resolver
	moduleExt string
}

// NewExporter builds an exporter. A Resolver option is required to Find datasets.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		l:         zap.NewNop(),
		moduleExt: DefaultModuleExt,
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}

// Find lists the datasets of every namespace.
//
// Namespaces are processed one after the other and the first failure aborts
// the whole operation: no partial result is returned.
func (e *Exporter) Find(ctx context.Context, namespaces []config.Namespace) (DatasetDict, error) {
	if e.resolve == nil {
		return nil, status.ErrConfig.Wrap(fmt.Errorf("no repository resolver configured"))
	}
	datasets := make(DatasetDict, 0, len(namespaces))
	for _, namespace := range namespaces {
		logger := e.l.With(zap.String("namespace", namespace.Name), zap.String("location", namespace.Location))
		logger.Debug("listing namespace")

		root, err := e.resolve(namespace.Location)
		if err != nil {
			return nil, status.ErrConfig.Wrap(fmt.Errorf("namespace %q: %w", namespace.Name, err))
		}
		found, err := listDatasets(ctx, root, e.moduleExt)
		if err != nil {
			logger.Error("failed to list namespace", zap.Error(err))
			return nil, fmt.Errorf("namespace %q: %w", namespace.Name, err)
		}

		logger.Info("namespace listed", zap.Int("datasets", len(found)))
		datasets = append(datasets, NamespaceDatasets{Namespace: namespace.Name, Datasets: found})
	}
	return datasets, nil
}

// Export finds the datasets of all namespaces and saves the index to key on store.
//
// Nothing is written when datasets cannot be listed. Previous content at key is replaced.
func (e *Exporter) Export(ctx context.Context, namespaces []config.Namespace, store storage.Store, key string) (DatasetDict, error) {
	datasets, err := e.Find(ctx, namespaces)
	if err != nil {
		return nil, err
	}
	if err := e.Save(ctx, store, key, datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}
