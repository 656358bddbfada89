package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationStatusBooked     = "Booked"
	ReservationStatusCheckedIn  = "CheckedIn"
	ReservationStatusCheckedOut = "CheckedOut"
	ReservationStatusCancelled  = "Cancelled"
)

// Reservation binds a guest to a room for a date range. It owns the payment
// and check-in/out transitions and mutates the attached room's status as a
// side effect; the room itself never references the reservation back.
type Reservation struct {
	gorm.Model
	Guest       Guest      `json:"guest" gorm:"embedded"`
	RoomNumber  string     `json:"roomNumber" gorm:"column:room_id;size:16;index;not null"`
	Room        *Room      `json:"room,omitempty" gorm:"-"`
	CheckIn     time.Time  `json:"checkIn" gorm:"column:check_in;type:date;not null"`
	CheckOut    time.Time  `json:"checkOut" gorm:"column:check_out;type:date;not null"`
	TotalPrice  float64    `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Status      string     `json:"status" gorm:"type:varchar(16);index"`
	IsPaid      bool       `json:"isPaid" gorm:"column:is_paid"`
	PaymentDate *time.Time `json:"paymentDate" gorm:"column:payment_date;type:date"`
}

// NewReservation is the only entry point for new bookings. It validates the
// guest, the dates and the room's availability, prices the stay, and flips
// the room to Reserved.
func NewReservation(guest *Guest, room *Room, checkIn, checkOut time.Time) (*Reservation, error) {
	if guest == nil {
		return nil, validationErr("guest", "guest cannot be nil")
	}
	if room == nil {
		return nil, validationErr("room", "room cannot be nil")
	}
	if !room.IsAvailable() {
		return nil, ErrRoomNotAvailable
	}

	checkIn = DateOnly(checkIn)
	checkOut = DateOnly(checkOut)
	if checkIn.Before(Today()) {
		return nil, validationErr("checkIn", "check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, validationErr("checkOut", "check-out must be after check-in")
	}

	total, err := room.PriceForStay(NightsBetween(checkIn, checkOut))
	if err != nil {
		return nil, err
	}

	room.Status = RoomStatusReserved
	return &Reservation{
		Guest:      *guest,
		RoomNumber: room.RoomNumber,
		Room:       room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Status:     ReservationStatusBooked,
		IsPaid:     false,
	}, nil
}

// RehydrateReservation rebuilds a reservation already known to exist in
// storage. It deliberately skips the room-availability and past-date checks,
// which only make sense for new bookings; it must never be used to admit one.
func RehydrateReservation(id uint, guest Guest, room *Room, checkIn, checkOut time.Time, totalPrice float64, status string, isPaid bool, paymentDate *time.Time) *Reservation {
	res := &Reservation{
		Guest:       guest,
		CheckIn:     DateOnly(checkIn),
		CheckOut:    DateOnly(checkOut),
		TotalPrice:  totalPrice,
		Status:      status,
		IsPaid:      isPaid,
		PaymentDate: paymentDate,
	}
	res.ID = id
	if room != nil {
		res.Room = room
		res.RoomNumber = room.RoomNumber
	}
	return res
}

// ProcessPayment marks the reservation paid. Paying twice is rejected and
// leaves the original payment date untouched.
func (r *Reservation) ProcessPayment() error {
	if r.IsPaid {
		return ErrAlreadyPaid
	}
	now := Today()
	r.IsPaid = true
	r.PaymentDate = &now
	return nil
}

// CheckInGuest admits the guest. Payment must have been received first.
func (r *Reservation) CheckInGuest() error {
	if r.isClosed() {
		return ErrReservationClosed
	}
	if !r.IsPaid {
		return ErrPaymentRequired
	}
	if err := r.setRoomStatus(RoomStatusOccupied); err != nil {
		return err
	}
	r.Status = ReservationStatusCheckedIn
	return nil
}

// CheckOutGuest ends the stay and hands the room to cleaning. It does not
// depend on the paid flag.
func (r *Reservation) CheckOutGuest() error {
	if r.isClosed() {
		return ErrReservationClosed
	}
	if err := r.setRoomStatus(RoomStatusCleaning); err != nil {
		return err
	}
	r.Status = ReservationStatusCheckedOut
	return nil
}

// Extend moves the check-out date forward and reprices the whole stay from
// the room's nightly rate. Only monotonic forward extension is allowed.
func (r *Reservation) Extend(newCheckOut time.Time) error {
	if r.isClosed() {
		return ErrReservationClosed
	}
	if r.Room == nil {
		return ErrRoomNotLoaded
	}
	newCheckOut = DateOnly(newCheckOut)
	if !newCheckOut.After(r.CheckOut) {
		return validationErr("checkOut", "new check-out must be after the current check-out")
	}
	total, err := r.Room.PriceForStay(NightsBetween(r.CheckIn, newCheckOut))
	if err != nil {
		return err
	}
	r.CheckOut = newCheckOut
	r.TotalPrice = total
	return nil
}

// Cancel releases the room. Only reservations that have not been checked in
// yet can be cancelled; payment fields are left as they are.
func (r *Reservation) Cancel() error {
	if r.Status != ReservationStatusBooked {
		return ErrReservationClosed
	}
	if err := r.setRoomStatus(RoomStatusAvailable); err != nil {
		return err
	}
	r.Status = ReservationStatusCancelled
	return nil
}

// IsActive reports whether the reservation still holds or occupies its room.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusBooked || r.Status == ReservationStatusCheckedIn
}

// Nights returns the whole-day count the stay is priced over.
func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

func (r *Reservation) isClosed() bool {
	return r.Status == ReservationStatusCheckedOut || r.Status == ReservationStatusCancelled
}

func (r *Reservation) setRoomStatus(status string) error {
	if r.Room == nil {
		return ErrRoomNotLoaded
	}
	return r.Room.SetStatus(status)
}

// DateOnly truncates a timestamp to its calendar date, pinned to UTC.
// Pinning matters twice over: UTC has no DST transitions, so subtracting two
// midnights always yields whole days, and dates arriving from clients in
// other zones compare by calendar date rather than by instant.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the server's current calendar date. Check-in validation compares
// against this.
func Today() time.Time {
	return DateOnly(time.Now())
}

// NightsBetween counts whole calendar days between two dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}
