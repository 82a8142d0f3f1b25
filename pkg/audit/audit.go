package audit

import "time"

// Audit records one entry per relayed query. The query text itself is
// never part of the record.
type Audit interface {
	Write(*RelayData) error
}

type RelayData struct {
	Model          string
	QueryLength    int
	ResponseLength int
	Success        bool
	Duration       time.Duration
	Timestamp      int64
}
