package models

// AuditLog records security-relevant operations such as logins, logouts
// and ledger writes.
type AuditLog struct {
	Base
	Login        string `gorm:"index" json:"login"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
