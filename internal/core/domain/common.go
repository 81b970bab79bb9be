package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Identifiers used across the tip distribution domain.
type (
	UserID       string
	RuleID       string
	DepartmentID string
	CategoryID   string
)

// Role is an employee role within a company, e.g. "serveur" or "commis".
type Role string

// AccessLevel is the privilege an operation requires within a company.
type AccessLevel string

const (
	AccessMember  AccessLevel = "MEMBER"
	AccessManager AccessLevel = "MANAGER"
)
