package utils

import (
	"strings"
	"testing"

	"hotel-management-server/models"
)

func captureAuditor(got **models.AuditLog) *Auditor {
	return &Auditor{save: func(entry *models.AuditLog) error {
		*got = entry
		return nil
	}}
}

func TestAuditorRecord(t *testing.T) {
	var got *models.AuditLog
	a := captureAuditor(&got)

	before := map[string]string{"status": "Booked"}
	after := map[string]string{"status": "Cancelled"}
	a.record("front-desk", "10.0.0.7", "reservation.cancel", "reservation", 42, before, after)

	if got == nil {
		t.Fatal("no audit entry recorded")
	}
	if got.Actor != "front-desk" {
		t.Errorf("Actor = %q, want %q", got.Actor, "front-desk")
	}
	if got.Action != "reservation.cancel" {
		t.Errorf("Action = %q, want %q", got.Action, "reservation.cancel")
	}
	if got.ResourceType != "reservation" || got.ResourceID != 42 {
		t.Errorf("resource = %s/%d, want reservation/42", got.ResourceType, got.ResourceID)
	}
	if got.IPAddress != "10.0.0.7" {
		t.Errorf("IPAddress = %q, want %q", got.IPAddress, "10.0.0.7")
	}
	if !strings.Contains(got.BeforeJSON, `"Booked"`) {
		t.Errorf("BeforeJSON = %q, want the prior status in it", got.BeforeJSON)
	}
	if !strings.Contains(got.AfterJSON, `"Cancelled"`) {
		t.Errorf("AfterJSON = %q, want the new status in it", got.AfterJSON)
	}
}

func TestAuditorRecordNilPayloads(t *testing.T) {
	var got *models.AuditLog
	a := captureAuditor(&got)

	a.record("", "203.0.113.9", "reservation.purge", "reservation", 7, nil, nil)

	if got == nil {
		t.Fatal("no audit entry recorded")
	}
	if got.BeforeJSON != "" || got.AfterJSON != "" {
		t.Errorf("snapshots = %q/%q, want empty for nil payloads", got.BeforeJSON, got.AfterJSON)
	}
	if got.Actor != "" {
		t.Errorf("Actor = %q, want empty when the header is absent", got.Actor)
	}
}
