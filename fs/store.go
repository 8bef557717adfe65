// Package fs provides file-based storage for the two MARC dataset
// tiers. Each tier is a single JSON file mapping field codes to field
// records; the verbose file is backed up before being replaced.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/mjanowski/marc"
)

// Dataset file names within the data directory.
const (
	BasicFile   = "marc.json"
	VerboseFile = "marc-verbose.json"

	// BackupSuffix is appended to the verbose file name when backing
	// up the previous dataset before a rewrite.
	BackupSuffix = ".bak"
)

// Ensure Store implements the domain interfaces at compile time.
var (
	_ marc.DatasetService = (*Store)(nil)
	_ marc.DatasetWriter  = (*Store)(nil)
)

// Store reads and writes dataset files under a single data directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the data directory: $MARC_DATA if set, otherwise
// ~/.marc (created if missing).
func DefaultDir() string {
	if dir := os.Getenv("MARC_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".marc")
	_ = os.MkdirAll(dir, 0755)
	return dir
}

// Path returns the file path for a tier's dataset.
func (s *Store) Path(tier marc.Tier) string {
	name := BasicFile
	if tier == marc.TierVerbose {
		name = VerboseFile
	}
	return filepath.Join(s.dir, name)
}

// LoadDataset loads a tier's dataset fully into memory.
// Returns EUNAVAILABLE if the file is missing or cannot be parsed.
func (s *Store) LoadDataset(ctx context.Context, tier marc.Tier) (*marc.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(tier)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, marc.Errorf(marc.EUNAVAILABLE, "dataset file %s not found; run marcscrape to generate it", path)
	} else if err != nil {
		return nil, marc.Errorf(marc.EUNAVAILABLE, "cannot read dataset file %s: %v", path, err)
	}

	var fields map[string]*marc.FieldRecord
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, marc.Errorf(marc.EUNAVAILABLE, "dataset file %s is corrupt (%v); run marcscrape to regenerate it", path, err)
	}

	ds := &marc.Dataset{Tier: tier, Fields: fields}
	if err := ds.Validate(); err != nil {
		return nil, marc.Errorf(marc.EUNAVAILABLE, "dataset file %s is invalid: %v", path, marc.ErrorMessage(err))
	}
	return ds, nil
}

// WriteDataset atomically replaces a tier's dataset file. An existing
// verbose file is copied to a .bak file first, unless its content hash
// matches the new content (nothing would be lost by overwriting).
func (s *Store) WriteDataset(ctx context.Context, ds *marc.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ds.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ds.Fields, "", "  ")
	if err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot encode dataset: %v", err)
	}
	data = append(data, '\n')

	path := s.Path(ds.Tier)
	if ds.Tier == marc.TierVerbose {
		if err := s.backup(path, data); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot create data directory %s: %v", s.dir, err)
	}

	// Write to a temp file and rename for atomic replacement.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot write dataset file %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot replace dataset file %s: %v", path, err)
	}
	return nil
}

// backup copies the existing file at path to path+BackupSuffix. The
// copy is skipped when the existing content hashes equal to the new
// content, or when there is no existing file.
func (s *Store) backup(path string, next []byte) error {
	prev, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot read existing dataset %s: %v", path, err)
	}

	if xxhash.Sum64(prev) == xxhash.Sum64(next) {
		return nil
	}

	src, err := os.Open(path)
	if err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot open %s for backup: %v", path, err)
	}
	defer src.Close()

	dst, err := os.Create(path + BackupSuffix)
	if err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot create backup of %s: %v", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return marc.Errorf(marc.EINTERNAL, "cannot back up %s: %v", path, err)
	}
	return nil
}
