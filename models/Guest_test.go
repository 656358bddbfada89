package models

import "testing"

const validSSN = "12345678901234" // 14 chars

func TestNewGuest(t *testing.T) {
	guest, err := NewGuest(validSSN, "Sara Ahmed", "01234567890", "sara@example.com")
	if err != nil {
		t.Fatalf("NewGuest() error = %v, want nil", err)
	}
	if guest.Name != "Sara Ahmed" {
		t.Errorf("Name = %q, want %q", guest.Name, "Sara Ahmed")
	}
	if guest.SSN != validSSN {
		t.Errorf("SSN = %q, want %q", guest.SSN, validSSN)
	}
}

func TestNewGuestValidation(t *testing.T) {
	tests := []struct {
		name  string
		ssn   string
		full  string
		phone string
		email string
	}{
		{"empty ssn", "", "Sara Ahmed", "01234567890", "sara@example.com"},
		{"short ssn", "1234567890123", "Sara Ahmed", "01234567890", "sara@example.com"},
		{"blank name", validSSN, "   ", "01234567890", "sara@example.com"},
		{"empty name", validSSN, "", "01234567890", "sara@example.com"},
		{"short phone", validSSN, "Sara Ahmed", "0123456789", "sara@example.com"},
		{"empty phone", validSSN, "Sara Ahmed", "", "sara@example.com"},
		{"email without at sign", validSSN, "Sara Ahmed", "01234567890", "sara.example.com"},
		{"empty email", validSSN, "Sara Ahmed", "01234567890", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest, err := NewGuest(tt.ssn, tt.full, tt.phone, tt.email)
			if err == nil {
				t.Fatal("NewGuest() error = nil, want validation error")
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation(%v) = false, want true", err)
			}
			if guest != nil {
				t.Errorf("NewGuest() guest = %v, want nil", guest)
			}
		})
	}
}
