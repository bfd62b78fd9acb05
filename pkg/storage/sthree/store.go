// Copyright © 2018 One Concern

package sthree

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/oneconcern/dsindex/pkg/storage"
	"github.com/oneconcern/dsindex/pkg/storage/status"
	"go.uber.org/zap"
)

// DefaultContentType of index objects
const DefaultContentType = "text/tab-separated-values"

// Option is a functor to pass optional parameters to the s3 store
type Option func(*s3FS)

// Bucket to write to
func Bucket(bucket string) Option {
	return func(fs *s3FS) {
		fs.bucket = bucket
	}
}

// AWSConfig overrides the config of the AWS session, e.g. region or endpoint
func AWSConfig(cfg *aws.Config) Option {
	return func(fs *s3FS) {
		fs.awsConfig = cfg
	}
}

// Client sets the S3 API client instead of building one from a session
func Client(client s3iface.S3API) Option {
	return func(fs *s3FS) {
		fs.s3 = client
	}
}

// Logger specifies a logger for this store
func Logger(logger *zap.Logger) Option {
	return func(fs *s3FS) {
		if logger != nil {
			fs.l = logger
		}
	}
}

// New builds a store on an S3 bucket
func New(option Option, options ...Option) (storage.Store, error) {
	fs := &s3FS{l: zap.NewNop()}
	option(fs)
	for _, apply := range options {
		apply(fs)
	}
	if fs.bucket == "" {
		return nil, status.ErrInvalidResource.Wrap(fmt.Errorf("empty s3 bucket name"))
	}

	if fs.s3 == nil {
		sess, err := session.NewSession(fs.awsConfig)
		if err != nil {
			return nil, toSentinelErrors(err)
		}
		fs.s3 = s3.New(sess)
	}
	fs.uploader = s3manager.NewUploaderWithClient(fs.s3)
	return fs, nil
}

type s3FS struct {
	bucket    string
	awsConfig *aws.Config
	s3        s3iface.S3API
	uploader  *s3manager.Uploader
	l         *zap.Logger
}

func (s *s3FS) String() string {
	return "s3://" + s.bucket
}

func (s *s3FS) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if err = filterErrNotExists(toSentinelErrors(err)); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// NewWriter buffers the object in memory. The upload happens on Close.
func (s *s3FS) NewWriter(ctx context.Context, key string) (io.WriteCloser, error) {
	return &s3Writer{ctx: ctx, store: s, key: key}, nil
}

type s3Writer struct {
	ctx    context.Context
	store  *s3FS
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *s3Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, status.ErrWriterClosed
	}
	return w.buf.Write(p)
}

func (w *s3Writer) Close() error {
	if w.closed {
		return status.ErrWriterClosed
	}
	w.closed = true
	w.store.l.Debug("s3 upload", zap.String("bucket", w.store.bucket), zap.String("key", w.key), zap.Int("size", w.buf.Len()))
	_, err := w.store.uploader.UploadWithContext(w.ctx, &s3manager.UploadInput{
		Bucket:      aws.String(w.store.bucket),
		Key:         aws.String(w.key),
		Body:        bytes.NewReader(w.buf.Bytes()),
		ContentType: aws.String(DefaultContentType),
	})
	return toSentinelErrors(err)
}
