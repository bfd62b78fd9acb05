// Copyright © 2018 One Concern

// Package storage provides interface to handle the destination of exported indices.
//
// This package supports the following backends:
//   - GCS (Google)
//   - S3 (AWS)
//   - local file system
package storage
