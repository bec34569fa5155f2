package controller

import "context"

// DetailController owns the single-entity view opened from a list row. It
// fetches only when opened with a non-empty identifier, and closing discards
// everything so the next open always refetches.
type DetailController[T any] struct {
	fetch func(ctx context.Context, id string) (*T, error)

	open    bool
	id      string
	detail  *T
	loading bool
	errMsg  string
}

// NewDetailController creates a closed detail view over the given fetch.
func NewDetailController[T any](fetch func(ctx context.Context, id string) (*T, error)) *DetailController[T] {
	return &DetailController[T]{fetch: fetch}
}

// Open shows the view for the given identifier and fetches its detail record.
// An empty identifier opens the view without issuing any call.
func (d *DetailController[T]) Open(ctx context.Context, id string) {
	d.open = true
	d.id = id
	if id == "" {
		return
	}

	d.loading = true
	d.errMsg = ""
	d.detail = nil

	detail, err := d.fetch(ctx, id)
	d.loading = false
	if err != nil {
		d.errMsg = err.Error()
		return
	}
	d.detail = detail
}

// CloseIfDeleted closes the view when its entity was among the deleted
// identifiers; a detail view must never keep showing a removed record.
func (d *DetailController[T]) CloseIfDeleted(ids []string) {
	if !d.open || d.id == "" {
		return
	}
	for _, id := range ids {
		if id == d.id {
			d.Close()
			return
		}
	}
}

// Close hides the view and clears the identifier and fetched state.
func (d *DetailController[T]) Close() {
	d.open = false
	d.id = ""
	d.detail = nil
	d.errMsg = ""
}

// IsOpen reports whether the view is showing.
func (d *DetailController[T]) IsOpen() bool { return d.open }

// ID returns the current target identifier, empty when closed.
func (d *DetailController[T]) ID() string { return d.id }

// Detail returns the fetched record, nil while loading or after an error.
func (d *DetailController[T]) Detail() *T { return d.detail }

// Loading reports whether a fetch is in flight.
func (d *DetailController[T]) Loading() bool { return d.loading }

// Error returns the fetch error slot.
func (d *DetailController[T]) Error() string { return d.errMsg }
