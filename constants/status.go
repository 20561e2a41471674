package constants

// PageStatus is the canonical status for rows in calendar_pages.
type PageStatus string

// Stable values (store these exact strings in DB).
const (
	PageStatusPending    PageStatus = "pending"    // created, extraction not yet started
	PageStatusProcessing PageStatus = "processing" // extraction in flight
	PageStatusSuccess    PageStatus = "success"    // terminal: events persisted
	PageStatusFailed     PageStatus = "failed"     // terminal: error kept in raw_result
)

// Terminal reports whether no further automatic transition occurs.
func (s PageStatus) Terminal() bool {
	return s == PageStatusSuccess || s == PageStatusFailed
}
