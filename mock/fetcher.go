// Package mock provides function-field mock implementations of the
// domain interfaces for testing.
package mock

import (
	"context"

	"github.com/mjanowski/marc"
)

var _ marc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of marc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ marc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of marc.DomainLimiter.
// A nil WaitFn never blocks.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, host)
}
