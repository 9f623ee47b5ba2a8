package health

import "time"

// Summary is the aggregated dashboard view: a fresh metrics snapshot,
// the weekly chart with its average, and the store sizes.
type Summary struct {
	Metrics       Metrics             `json:"metrics"`
	Chart         []RecoveryDataPoint `json:"chart"`
	WeeklyAverage int                 `json:"weekly_average"`
	MessageCount  int                 `json:"message_count"`
	DocumentCount int                 `json:"document_count"`
	GeneratedAt   time.Time           `json:"generated_at"`
}
