package models

import (
	"time"
)

// AuditLog is an append-only record of every room/reservation lifecycle
// transition. Actor is free-form (front desk staff name from the request),
// since authentication lives outside this service.
type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Actor        string    `json:"actor" gorm:"size:64;index"`
	Action       string    `json:"action" gorm:"size:64;index"`
	ResourceType string    `json:"resourceType" gorm:"size:64;index"`
	ResourceID   uint      `json:"resourceID" gorm:"index"`
	BeforeJSON   string    `json:"beforeJSON" gorm:"type:text"`
	AfterJSON    string    `json:"afterJSON" gorm:"type:text"`
	IPAddress    string    `json:"ipAddress" gorm:"size:64"`
	CreatedAt    time.Time `json:"createdAt"`
}
