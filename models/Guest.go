package models

import "strings"

// Guest is constructed fresh per reservation request and denormalized onto
// the reservation row, so it carries the guest_* columns itself.
type Guest struct {
	SSN         string `json:"ssn" gorm:"column:guest_ssn;size:32"`
	Name        string `json:"name" gorm:"column:guest_name;size:128"`
	PhoneNumber string `json:"phoneNumber" gorm:"column:guest_phone;size:32"`
	Email       string `json:"email" gorm:"column:guest_email;size:128"`
}

// NewGuest validates all four fields; no partially valid guest ever exists.
// Treat the result as immutable.
func NewGuest(ssn, name, phoneNumber, email string) (*Guest, error) {
	if strings.TrimSpace(ssn) == "" {
		return nil, validationErr("ssn", "SSN cannot be empty")
	}
	if len(ssn) < 14 {
		return nil, validationErr("ssn", "SSN must be at least 14 characters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("name", "name cannot be empty")
	}
	if strings.TrimSpace(phoneNumber) == "" || len(phoneNumber) < 11 {
		return nil, validationErr("phoneNumber", "phone number must be at least 11 characters")
	}
	if !strings.Contains(email, "@") {
		return nil, validationErr("email", "invalid email address")
	}
	return &Guest{
		SSN:         ssn,
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
	}, nil
}
