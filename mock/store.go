package mock

import (
	"context"

	"github.com/mjanowski/marc"
)

var _ marc.DatasetService = (*DatasetService)(nil)

// DatasetService is a mock implementation of marc.DatasetService.
type DatasetService struct {
	LoadDatasetFn func(ctx context.Context, tier marc.Tier) (*marc.Dataset, error)
}

func (s *DatasetService) LoadDataset(ctx context.Context, tier marc.Tier) (*marc.Dataset, error) {
	return s.LoadDatasetFn(ctx, tier)
}

var _ marc.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of marc.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, ds *marc.Dataset) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, ds *marc.Dataset) error {
	return w.WriteDatasetFn(ctx, ds)
}
