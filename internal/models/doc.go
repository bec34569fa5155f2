// Package models provides the data records mirrored from the fairsplit admin API.
// The console holds no authoritative state: every record here lives only as long as
// the currently loaded page and is discarded and refetched after each mutation.
package models
