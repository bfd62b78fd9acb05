// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
)

// Store implementations know how to write whole objects to a K/V model.
//
// Typically this is something file system-like. Examples are S3, local FS, NFS, ...
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)

	// NewWriter opens an object for writing. Any previous content is replaced.
	//
	// Callers must Close the writer: the content is only guaranteed to be
	// persisted once Close returns without error.
	NewWriter(context.Context, string) (io.WriteCloser, error)
}
