// Package cloudwriter moves whole objects to and from cloud storage: event
// files are buffered and uploaded on Close, catalog documents are fetched
// in one read.
package cloudwriter

import "context"

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// ObjectReader fetches a complete object.
type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, key string) ([]byte, error)
}
