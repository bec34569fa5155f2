// Package controller implements the screen-side state machines of the admin
// console: the generic paged list, the detail view, and the destructive-action
// confirmation dialog. Controllers own no data of their own; every list is a
// throwaway mirror of one server page, refetched after each mutation.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairsplit-admin/internal/models"

	apperrors "github.com/fairsplit-admin/internal/errors"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// StatusAll disables the client-side status filter.
const StatusAll = "all"

// Query is the state a list request is built from.
type Query struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Status    string
}

// ResultPage is one fetched page plus its pagination envelope.
type ResultPage[T any] struct {
	Items      []T
	Pagination models.Pagination
}

// ListConfig wires a ListController to one entity's API operations. Create,
// Update, and Delete may be nil when the entity does not support them.
type ListConfig[T any] struct {
	Fetch  func(ctx context.Context, q Query) (*ResultPage[T], error)
	Create func(ctx context.Context, fields map[string]string) error
	Update func(ctx context.Context, id string, fields map[string]string) error
	Delete func(ctx context.Context, ids []string) (*models.BulkDeleteResult, error)
	ID     func(item T) string

	// Visible filters the fetched page in memory (the groups status filter).
	// Filtering runs after server-side pagination, so a filtered page may be
	// shorter than the page size while the envelope's totals stay untouched.
	// That is the documented behavior, not a bug to fix by refetching.
	Visible func(q Query, items []T) []T

	// Required lists the field names Create and Update reject when blank.
	Required []string

	DefaultSortBy    string
	DefaultSortOrder string
}

// ListController owns the paged, filtered, sorted collection state for one
// entity type. It is driven from a single goroutine; overlapping loads are
// not guarded against and the last one to finish wins.
type ListController[T any] struct {
	cfg ListConfig[T]

	query      Query
	items      []T
	pagination models.Pagination
	loading    bool
	errMsg     string
	selection  *Selection
}

// NewListController creates a controller starting at page 1 with a page size
// of 10, mirroring the dashboard defaults.
func NewListController[T any](cfg ListConfig[T]) *ListController[T] {
	return &ListController[T]{
		cfg: cfg,
		query: Query{
			Page:      1,
			Limit:     10,
			SortBy:    cfg.DefaultSortBy,
			SortOrder: cfg.DefaultSortOrder,
			Status:    StatusAll,
		},
		selection: NewSelection(),
	}
}

// Load fetches the page described by the current query. Failures of any kind
// land in the error slot instead of propagating; the loading flag is set
// strictly for the duration of the request, including on error paths.
func (l *ListController[T]) Load(ctx context.Context) {
	l.loading = true
	l.errMsg = ""
	defer func() { l.loading = false }()

	page, err := l.cfg.Fetch(ctx, l.query)
	if err != nil {
		l.errMsg = err.Error()
		return
	}

	items := page.Items
	if l.cfg.Visible != nil {
		items = l.cfg.Visible(l.query, items)
	}
	l.items = items
	l.pagination = page.Pagination
}

// Search stores the term and reloads from page 1.
func (l *ListController[T]) Search(ctx context.Context, term string) {
	l.query.Search = term
	l.query.Page = 1
	l.Load(ctx)
}

// SetPage moves to the given page and reloads.
func (l *ListController[T]) SetPage(ctx context.Context, page int) {
	l.query.Page = page
	l.Load(ctx)
}

// SetPageSize changes the page size, resets to page 1, and reloads.
func (l *ListController[T]) SetPageSize(ctx context.Context, limit int) {
	l.query.Limit = limit
	l.query.Page = 1
	l.Load(ctx)
}

// ToggleSort re-selects or switches the sort key: the same key flips the
// direction, a new key starts descending. Reloads afterwards.
func (l *ListController[T]) ToggleSort(ctx context.Context, key string) {
	if l.query.SortBy == key {
		if l.query.SortOrder == SortAsc {
			l.query.SortOrder = SortDesc
		} else {
			l.query.SortOrder = SortAsc
		}
	} else {
		l.query.SortBy = key
		l.query.SortOrder = SortDesc
	}
	l.Load(ctx)
}

// SetStatusFilter changes the client-side status filter and reloads.
func (l *ListController[T]) SetStatusFilter(ctx context.Context, status string) {
	l.query.Status = status
	l.Load(ctx)
}

// Create validates the required fields, issues the create, and refreshes the
// list with the currently active page, size, and search. Blank required
// fields fail fast without any network call.
func (l *ListController[T]) Create(ctx context.Context, fields map[string]string) error {
	if l.cfg.Create == nil {
		return fmt.Errorf("create is not supported for this resource")
	}
	fields, err := l.validate(fields)
	if err != nil {
		return err
	}
	if err := l.cfg.Create(ctx, fields); err != nil {
		return err
	}
	l.Load(ctx)
	return nil
}

// Update validates the required fields, issues the update, and refreshes.
func (l *ListController[T]) Update(ctx context.Context, id string, fields map[string]string) error {
	if l.cfg.Update == nil {
		return fmt.Errorf("update is not supported for this resource")
	}
	fields, err := l.validate(fields)
	if err != nil {
		return err
	}
	if err := l.cfg.Update(ctx, id, fields); err != nil {
		return err
	}
	l.Load(ctx)
	return nil
}

// validate trims every field and rejects blank required ones.
func (l *ListController[T]) validate(fields map[string]string) (map[string]string, error) {
	trimmed := make(map[string]string, len(fields))
	for key, value := range fields {
		trimmed[key] = strings.TrimSpace(value)
	}
	var blank []string
	for _, name := range l.cfg.Required {
		if trimmed[name] == "" {
			blank = append(blank, name)
		}
	}
	if len(blank) > 0 {
		return nil, &apperrors.ValidationError{Fields: blank}
	}
	return trimmed, nil
}

// DeleteOne deletes a single entity as a one-element bulk call.
func (l *ListController[T]) DeleteOne(ctx context.Context, id string) (*models.BulkDeleteResult, error) {
	return l.DeleteMany(ctx, []string{id})
}

// DeleteMany deletes the given ids. Whatever the outcome - full success,
// partial failure, or transport error - the list is refreshed and the
// selection cleared afterwards, because the server may have applied part of
// the work.
func (l *ListController[T]) DeleteMany(ctx context.Context, ids []string) (*models.BulkDeleteResult, error) {
	if l.cfg.Delete == nil {
		return nil, fmt.Errorf("delete is not supported for this resource")
	}
	defer func() {
		l.selection.Clear()
		l.Load(ctx)
	}()
	return l.cfg.Delete(ctx, ids)
}

// DeleteSelected deletes the current selection.
func (l *ListController[T]) DeleteSelected(ctx context.Context) (*models.BulkDeleteResult, error) {
	return l.DeleteMany(ctx, l.selection.IDs())
}

// SelectAllOnPage replaces the selection with the visible page's identifiers.
func (l *ListController[T]) SelectAllOnPage() {
	ids := make([]string, 0, len(l.items))
	for i := range l.items {
		ids = append(ids, l.cfg.ID(l.items[i]))
	}
	l.selection.SelectAll(ids)
}

// AllSelected reports whether the whole visible page is selected.
func (l *ListController[T]) AllSelected() bool {
	return l.selection.AllSelected(len(l.items))
}

// Indeterminate reports whether part of the visible page is selected.
func (l *ListController[T]) Indeterminate() bool {
	return l.selection.Indeterminate(len(l.items))
}

// Items returns the currently displayed page.
func (l *ListController[T]) Items() []T { return l.items }

// Pagination returns the last received pagination envelope.
func (l *ListController[T]) Pagination() models.Pagination { return l.pagination }

// Loading reports whether a load is in flight.
func (l *ListController[T]) Loading() bool { return l.loading }

// Error returns the current error slot; empty when the last load succeeded.
func (l *ListController[T]) Error() string { return l.errMsg }

// Query returns the active query state.
func (l *ListController[T]) Query() Query { return l.query }

// Selection returns the bulk-operation selection.
func (l *ListController[T]) Selection() *Selection { return l.selection }

// SummarizeDelete renders a bulk-delete outcome the way the dashboard toasts
// it: success and failure counts reported distinctly, failed ids listed.
func SummarizeDelete(result *models.BulkDeleteResult, singular, plural string) string {
	noun := plural
	if result.SuccessCount == 1 {
		noun = singular
	}
	summary := fmt.Sprintf("%d %s deleted", result.SuccessCount, noun)
	if result.FailedCount > 0 {
		summary += fmt.Sprintf(", %d failed: %s", result.FailedCount, strings.Join(result.Failed, ", "))
	}
	return summary
}
