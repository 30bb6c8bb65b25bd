package domain

import "time"

// AuditEntry records one security-relevant event for the audit trail.
type AuditEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Actor     string    `json:"actor" bson:"actor"` // username, or "anonymous"
	Action    string    `json:"action" bson:"action"`
	Resource  string    `json:"resource" bson:"resource"`
	TargetID  string    `json:"target_id,omitempty" bson:"target_id,omitempty"`
	Outcome   string    `json:"outcome" bson:"outcome"` // "ok" or "denied"
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
