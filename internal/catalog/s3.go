package catalog

import (
	"context"

	"github.com/chrisdamba/foodstories/internal/cloudwriter"
	"github.com/chrisdamba/foodstories/internal/models"
)

// S3 reads a catalog document from object storage.
type S3 struct {
	Reader cloudwriter.ObjectReader
	Bucket string
	Key    string
}

func (s S3) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	data, err := s.Reader.ReadObject(ctx, s.Bucket, s.Key)
	if err != nil {
		return nil, err
	}
	return Decode(s.Key, data)
}
