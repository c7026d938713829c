package domain

import "time"

// AuditFields holds standard audit information for domain entities. The
// system has a single admin operator, so no per-actor attribution is kept.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
