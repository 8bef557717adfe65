package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjanowski/marc"
)

// Ensure LoggingWriter implements marc.DatasetWriter at compile time.
var _ marc.DatasetWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DatasetWriter with write logging.
type LoggingWriter struct {
	next   marc.DatasetWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next marc.DatasetWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDataset delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDataset(ctx context.Context, ds *marc.Dataset) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write dataset",
			"tier", string(ds.Tier),
			"fields", len(ds.Fields),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDataset(ctx, ds)
}
