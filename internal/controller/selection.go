package controller

import "sort"

// Selection tracks the identifiers picked for a bulk operation. It is always
// scoped to the currently loaded page: select-all selects exactly that page,
// never the whole collection.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds the id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll replaces the selection with exactly the given page of identifiers.
func (s *Selection) SelectAll(pageIDs []string) {
	s.ids = make(map[string]struct{}, len(pageIDs))
	for _, id := range pageIDs {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Has reports whether the id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected identifiers.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected identifiers in stable order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AllSelected is true only when the page is non-empty and every row on it is
// selected.
func (s *Selection) AllSelected(pageSize int) bool {
	return pageSize > 0 && len(s.ids) == pageSize
}

// Indeterminate is true when some but not all of the page is selected.
func (s *Selection) Indeterminate(pageSize int) bool {
	return len(s.ids) > 0 && len(s.ids) < pageSize
}
