package community

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/oneconcern/dsindex/pkg/community/status"
	"github.com/oneconcern/dsindex/pkg/storage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// IndexHeader is the first row of the index
var IndexHeader = []string{"namespace", "name", "path"}

// IndexDelimiter separates the fields of the index
const IndexDelimiter = '\t'

// WriteIndex serializes datasets as tab-separated rows, after a header row.
//
// Rows end with CRLF.
func WriteIndex(w io.Writer, datasets DatasetDict) error {
	writer := csv.NewWriter(w)
	writer.Comma = IndexDelimiter
	writer.UseCRLF = true

	if err := writer.Write(IndexHeader); err != nil {
		return err
	}
	for _, ns := range datasets {
		for _, dataset := range ns.Datasets {
			if err := writer.Write([]string{ns.Namespace, dataset.Name(), dataset.String()}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes the index to key on store, replacing any previous content.
//
// The destination is always closed. On failure its content is undefined.
func (e *Exporter) Save(ctx context.Context, store storage.Store, key string, datasets DatasetDict) (err error) {
	logger := e.l.With(zap.Stringer("store", store), zap.String("key", key))

	exists, herr := store.Has(ctx, key)
	switch {
	case herr != nil:
		logger.Warn("could not check for a previous index", zap.Error(herr))
	case exists:
		logger.Info("replacing previous index")
	}

	w, err := store.NewWriter(ctx, key)
	if err != nil {
		return status.ErrWrite.Wrap(fmt.Errorf("opening %s: %w", key, err))
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = multierr.Append(err, status.ErrWrite.Wrap(fmt.Errorf("closing %s: %w", key, cerr)))
		}
	}()

	if err = WriteIndex(w, datasets); err != nil {
		return status.ErrWrite.Wrap(fmt.Errorf("writing %s: %w", key, err))
	}

	logger.Info("index rows written", zap.Int("namespaces", len(datasets)), zap.Int("datasets", datasets.Len()))
	return nil
}
