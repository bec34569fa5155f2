package models

// Envelope is the response wrapper used by every fairsplit admin endpoint.
// Status is an application-level code that duplicates/refines the HTTP status;
// a 200 HTTP response can still carry an embedded failure.
type Envelope[T any] struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    T      `json:"data"`
}

// OK reports whether the embedded status indicates success.
func (e *Envelope[T]) OK() bool {
	return e.Status == 200
}

// Pagination describes the server-side paging of a list response.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Consistent reports whether the envelope is internally consistent:
// totalPages must equal ceil(totalItems/limit) and the has-next flag must
// agree with the page position.
func (p Pagination) Consistent() bool {
	if p.Limit <= 0 {
		return false
	}
	wantPages := (p.TotalItems + p.Limit - 1) / p.Limit
	if p.TotalPages != wantPages {
		return false
	}
	return p.HasNextPage == (p.Page < p.TotalPages)
}

// BulkDeleteResult is the per-item outcome partition returned by bulk deletes.
type BulkDeleteResult struct {
	SuccessCount int      `json:"successCount"`
	FailedCount  int      `json:"failedCount"`
	Failed       []string `json:"failed"`
}
