package models

import (
	"math"
	"reflect"
	"testing"
)

func TestNewRoomDefaults(t *testing.T) {
	room, err := NewRoom("101", 2, "Single", 100, 1, false)
	if err != nil {
		t.Fatalf("NewRoom() error = %v, want nil", err)
	}
	if room.Status != RoomStatusAvailable {
		t.Errorf("Status = %q, want %q", room.Status, RoomStatusAvailable)
	}
	if !room.IsAvailable() {
		t.Error("IsAvailable() = false, want true")
	}
	if room.RoomType != RoomTypeSingle {
		t.Errorf("RoomType = %q, want %q", room.RoomType, RoomTypeSingle)
	}
}

func TestNewRoomValidation(t *testing.T) {
	tests := []struct {
		name       string
		roomNumber string
		capacity   int
		roomType   string
		price      float64
		floor      int
	}{
		{"empty room number", "", 2, "Single", 100, 1},
		{"blank room number", "   ", 2, "Single", 100, 1},
		{"capacity too low", "101", 0, "Single", 100, 1},
		{"capacity too high", "101", 11, "Single", 100, 1},
		{"unknown room type", "101", 2, "Penthouse", 100, 1},
		{"empty room type", "101", 2, "", 100, 1},
		{"negative price", "101", 2, "Single", -1, 1},
		{"negative floor", "101", 2, "Single", 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := NewRoom(tt.roomNumber, tt.capacity, tt.roomType, tt.price, tt.floor, false)
			if err == nil {
				t.Fatalf("NewRoom() error = nil, want validation error")
			}
			if !IsValidation(err) {
				t.Errorf("IsValidation(%v) = false, want true", err)
			}
			if room != nil {
				t.Errorf("NewRoom() room = %v, want nil", room)
			}
		})
	}
}

func TestRoomTypeCanonicalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"single", "Single"},
		{"DOUBLE", "Double"},
		{"tRiPlE", "Triple"},
		{"suite", "Suite"},
		{"Suite", "Suite"},
	}
	for _, tt := range tests {
		got, err := CanonicalRoomType(tt.input)
		if err != nil {
			t.Errorf("CanonicalRoomType(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalRoomType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRoomFeaturesPerType(t *testing.T) {
	tests := []struct {
		roomType string
		want     []string
	}{
		{"Single", []string{"TV", "Kettle"}},
		{"Double", []string{"TV", "Kettle", "Mini Fridge", "Balcony View"}},
		{"Triple", []string{"TV", "Kettle", "Fridge", "Balcony View", "Two Bathrooms"}},
		{"Suite", []string{"Smart TV", "Mini Fridge", "Coffee Machine", "Sea View", "VIP Bathroom"}},
	}
	for _, tt := range tests {
		t.Run(tt.roomType, func(t *testing.T) {
			room, err := NewRoom("101", 2, tt.roomType, 100, 1, false)
			if err != nil {
				t.Fatalf("NewRoom() error = %v", err)
			}
			got := room.FeatureList()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FeatureList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetRoomTypeRecomputesFeatures(t *testing.T) {
	room, err := NewRoom("101", 2, "Single", 100, 1, false)
	if err != nil {
		t.Fatalf("NewRoom() error = %v", err)
	}
	if err := room.SetRoomType("suite"); err != nil {
		t.Fatalf("SetRoomType() error = %v", err)
	}

	got := room.FeatureList()
	if len(got) != 5 {
		t.Errorf("FeatureList() has %d features, want 5", len(got))
	}
	found := false
	for _, f := range got {
		if f == "VIP Bathroom" {
			found = true
		}
	}
	if !found {
		t.Errorf("FeatureList() = %v, want it to contain %q", got, "VIP Bathroom")
	}
}

func TestSetStatus(t *testing.T) {
	room, err := NewRoom("101", 2, "Single", 100, 1, false)
	if err != nil {
		t.Fatalf("NewRoom() error = %v", err)
	}

	for _, status := range ValidRoomStatuses {
		if err := room.SetStatus(status); err != nil {
			t.Errorf("SetStatus(%q) error = %v, want nil", status, err)
		}
		if room.Status != status {
			t.Errorf("Status = %q, want %q", room.Status, status)
		}
	}

	// Case-insensitive input canonicalizes.
	if err := room.SetStatus("cleaning"); err != nil {
		t.Fatalf("SetStatus(cleaning) error = %v", err)
	}
	if room.Status != RoomStatusCleaning {
		t.Errorf("Status = %q, want %q", room.Status, RoomStatusCleaning)
	}

	if err := room.SetStatus("Demolished"); err == nil {
		t.Error("SetStatus(Demolished) error = nil, want validation error")
	}
	if room.Status != RoomStatusCleaning {
		t.Errorf("Status changed to %q after rejected update", room.Status)
	}
}

func TestPriceForStay(t *testing.T) {
	room, err := NewRoom("101", 2, "Single", 100, 1, false)
	if err != nil {
		t.Fatalf("NewRoom() error = %v", err)
	}

	got, err := room.PriceForStay(3)
	if err != nil {
		t.Fatalf("PriceForStay(3) error = %v", err)
	}
	if got != 300 {
		t.Errorf("PriceForStay(3) = %v, want 300", got)
	}

	got, err = room.PriceForStay(0)
	if err != nil {
		t.Fatalf("PriceForStay(0) error = %v", err)
	}
	if got != 0 {
		t.Errorf("PriceForStay(0) = %v, want 0", got)
	}

	if _, err := room.PriceForStay(-1); err == nil {
		t.Error("PriceForStay(-1) error = nil, want validation error")
	}
}

func TestPriceForStayExtraBed(t *testing.T) {
	room, err := NewRoom("102", 2, "Double", 200, 1, true)
	if err != nil {
		t.Fatalf("NewRoom() error = %v", err)
	}

	got, err := room.PriceForStay(4)
	if err != nil {
		t.Fatalf("PriceForStay(4) error = %v", err)
	}
	want := 200.0 * 4 * ExtraBedMultiplier
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PriceForStay(4) = %v, want %v", got, want)
	}
}
