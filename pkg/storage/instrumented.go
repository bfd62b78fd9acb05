// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

// Instrument decorates a store with logs of the operations it serves
func Instrument(logger *zap.Logger, store Store) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &instrumentedStore{
		store: store,
		l:     logger.With(zap.String("store", store.String())),
	}
}

type instrumentedStore struct {
	store Store
	l     *zap.Logger
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}

func (i *instrumentedStore) Has(ctx context.Context, key string) (bool, error) {
	has, err := i.store.Has(ctx, key)
	i.l.Debug("storage has", zap.String("key", key), zap.Bool("has", has), zap.Error(err))
	return has, err
}

func (i *instrumentedStore) NewWriter(ctx context.Context, key string) (io.WriteCloser, error) {
	w, err := i.store.NewWriter(ctx, key)
	if err != nil {
		i.l.Debug("storage open writer failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	i.l.Debug("storage open writer", zap.String("key", key))
	return &instrumentedWriter{
		WriteCloser: w,
		l:           i.l.With(zap.String("key", key)),
		start:       time.Now(),
	}, nil
}

type instrumentedWriter struct {
	io.WriteCloser
	l       *zap.Logger
	start   time.Time
	written int64
}

func (w *instrumentedWriter) Write(p []byte) (int, error) {
	n, err := w.WriteCloser.Write(p)
	w.written += int64(n)
	return n, err
}

func (w *instrumentedWriter) Close() error {
	err := w.WriteCloser.Close()
	w.l.Info("storage object written",
		zap.Int64("bytes", w.written),
		zap.Duration("duration", time.Since(w.start)),
		zap.Error(err),
	)
	return err
}
