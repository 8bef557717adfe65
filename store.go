package marc

import "context"

// DatasetService loads persisted datasets for querying.
type DatasetService interface {
	// LoadDataset loads the dataset for the given tier fully into
	// memory. Returns EUNAVAILABLE if the dataset file is missing or
	// cannot be parsed.
	LoadDataset(ctx context.Context, tier Tier) (*Dataset, error)
}

// DatasetWriter persists datasets. The scraper is the sole writer and
// always produces a full replacement, never a partial patch.
type DatasetWriter interface {
	// WriteDataset writes the dataset for its tier. Implementations
	// back up an existing verbose dataset before replacing it; the
	// basic dataset is not backed up.
	WriteDataset(ctx context.Context, ds *Dataset) error
}
