// Package status exports errors produced by the community package
// and the namespaces config loader.
package status

import (
	"github.com/oneconcern/dsindex/pkg/errors"
)

var (
	// ErrConfig indicates that the namespaces config is missing, unreadable or malformed
	ErrConfig = errors.New("invalid namespaces config")

	// ErrNotFound indicates that a configured repository location could not be reached
	ErrNotFound = errors.New("namespace location not found")

	// ErrWrite indicates that the index destination could not be opened or written
	ErrWrite = errors.New("failed to write index")
)
