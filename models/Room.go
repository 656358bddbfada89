package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusCleaning    = "Cleaning"
	RoomStatusMaintenance = "Maintenance"
	RoomStatusReserved    = "Reserved"
)

const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeTriple = "Triple"
	RoomTypeSuite  = "Suite"
)

var ValidRoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusOccupied,
	RoomStatusCleaning,
	RoomStatusMaintenance,
	RoomStatusReserved,
}

var ValidRoomTypes = []string{
	RoomTypeSingle,
	RoomTypeDouble,
	RoomTypeTriple,
	RoomTypeSuite,
}

// ExtraBedMultiplier is the flat surcharge factor for rooms with an extra bed.
const ExtraBedMultiplier = 1.1

// The feature list is fully determined by the room type; it is recomputed on
// every type change and never settable on its own.
var roomTypeFeatures = map[string][]string{
	RoomTypeSingle: {"TV", "Kettle"},
	RoomTypeDouble: {"TV", "Kettle", "Mini Fridge", "Balcony View"},
	RoomTypeTriple: {"TV", "Kettle", "Fridge", "Balcony View", "Two Bathrooms"},
	RoomTypeSuite:  {"Smart TV", "Mini Fridge", "Coffee Machine", "Sea View", "VIP Bathroom"},
}

type Room struct {
	gorm.Model
	RoomNumber string         `json:"roomNumber" gorm:"column:room_number;size:16;uniqueIndex;not null"`
	Capacity   int            `json:"capacity"`
	RoomType   string         `json:"roomType" gorm:"column:room_type;type:varchar(16)"`
	Features   datatypes.JSON `json:"features"`
	Status     string         `json:"status" gorm:"type:varchar(16);index"`
	Price      float64        `json:"price" gorm:"type:decimal(10,2)"`
	Floor      int            `json:"floor"`
	ExtraBed   bool           `json:"extraBed" gorm:"column:extra_bed"`
}

// NewRoom validates every field up front; an invalid value means no Room is
// created at all. New rooms always start out Available.
func NewRoom(roomNumber string, capacity int, roomType string, price float64, floor int, extraBed bool) (*Room, error) {
	if strings.TrimSpace(roomNumber) == "" {
		return nil, validationErr("roomNumber", "room number cannot be empty")
	}
	if capacity < 1 || capacity > 10 {
		return nil, validationErr("capacity", "capacity must be between 1 and 10")
	}
	if price < 0 {
		return nil, validationErr("price", "price cannot be negative")
	}
	if floor < 0 {
		return nil, validationErr("floor", "floor cannot be negative")
	}

	room := &Room{
		RoomNumber: roomNumber,
		Capacity:   capacity,
		Status:     RoomStatusAvailable,
		Price:      price,
		Floor:      floor,
		ExtraBed:   extraBed,
	}
	if err := room.SetRoomType(roomType); err != nil {
		return nil, err
	}
	return room, nil
}

// SetRoomType canonicalizes the type (case-insensitive input) and recomputes
// the feature list.
func (r *Room) SetRoomType(roomType string) error {
	canonical, err := CanonicalRoomType(roomType)
	if err != nil {
		return err
	}
	r.RoomType = canonical
	features, _ := json.Marshal(roomTypeFeatures[canonical])
	r.Features = features
	return nil
}

// SetStatus only guards against unknown values. Transition legality between
// the five statuses is the booking layer's business, not the room's.
func (r *Room) SetStatus(status string) error {
	for _, s := range ValidRoomStatuses {
		if strings.EqualFold(s, status) {
			r.Status = s
			return nil
		}
	}
	return validationErr("status", fmt.Sprintf("invalid status %q, must be one of: %s", status, strings.Join(ValidRoomStatuses, ", ")))
}

// PriceForStay returns the total price for the given number of nights,
// applying the extra-bed surcharge when the room carries one.
func (r *Room) PriceForStay(nights int) (float64, error) {
	if nights < 0 {
		return 0, validationErr("nights", "number of nights cannot be negative")
	}
	total := r.Price * float64(nights)
	if r.ExtraBed {
		total *= ExtraBedMultiplier
	}
	return total, nil
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}

// FeatureList decodes the stored feature column back into a slice.
func (r *Room) FeatureList() []string {
	var features []string
	if len(r.Features) > 0 {
		if err := json.Unmarshal(r.Features, &features); err != nil {
			return []string{}
		}
	}
	return features
}

// CanonicalRoomType maps case-insensitive input onto the capitalized form.
func CanonicalRoomType(roomType string) (string, error) {
	if strings.TrimSpace(roomType) == "" {
		return "", validationErr("roomType", "room type cannot be empty")
	}
	for _, t := range ValidRoomTypes {
		if strings.EqualFold(t, roomType) {
			return t, nil
		}
	}
	return "", validationErr("roomType", fmt.Sprintf("invalid room type %q, must be one of: %s", roomType, strings.Join(ValidRoomTypes, ", ")))
}
