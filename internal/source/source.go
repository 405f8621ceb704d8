package source

import (
	"context"
	"fmt"

	"vitrina/internal/catalog"
)

// Source is the catalog data source contract. Implementations fetch the
// full collection from the backing table and forward the best-effort
// popularity counter increment.
type Source interface {
	FetchAll(ctx context.Context) ([]*catalog.Product, error)
	// FetchByCategoryLabels is the server-side AND-filter equivalent.
	// The browser filters client-side by default; this exists so a
	// partial-load design can switch without changing the contract.
	FetchByCategoryLabels(ctx context.Context, labels []string) ([]*catalog.Product, error)
	IncrementPopularity(ctx context.Context, productID string) error
}

// DataSourceError wraps any failure talking to the backing store: network,
// auth, malformed response. It is never fatal to the process.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func newError(op string, err error) *DataSourceError {
	return &DataSourceError{Op: op, Err: err}
}
