package utils

import (
	"encoding/json"
	"log"
	"net"

	"hotel-management-server/models"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// Auditor appends lifecycle transitions to the audit trail. It is handed its
// storage handle at construction, like the repositories; it never reaches for
// a package global to write through.
type Auditor struct {
	save func(entry *models.AuditLog) error
}

func NewAuditor(db *gorm.DB) *Auditor {
	return &Auditor{save: func(entry *models.AuditLog) error {
		return db.Create(entry).Error
	}}
}

// Record writes one audit entry for the request. The actor is whatever the
// front desk client sends in X-Staff-Name; authenticating that claim is an
// upstream concern, not this service's.
func (a *Auditor) Record(ctx iris.Context, action, resourceType string, resourceID uint, before interface{}, after interface{}) {
	a.record(ctx.GetHeader("X-Staff-Name"), clientIP(ctx), action, resourceType, resourceID, before, after)
}

func (a *Auditor) record(actor, ip, action, resourceType string, resourceID uint, before interface{}, after interface{}) {
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if b, err := json.Marshal(after); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		Actor:        actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   beforeStr,
		AfterJSON:    afterStr,
		IPAddress:    ip,
	}
	if err := a.save(&entry); err != nil {
		log.Printf("failed to record audit entry %s: %v", action, err)
	}
}

func clientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(ctx.RemoteAddr())
	return ip
}
