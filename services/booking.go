package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-management-server/models"
)

// RoomStore is the room half of the storage collaborator. UpdateRoomStatusIf
// must be atomic (conditional update); it is the single-writer guarantee
// against double-booking a room.
type RoomStore interface {
	FindRoom(ctx context.Context, roomNumber string) (*models.Room, error)
	SaveRoom(ctx context.Context, room *models.Room) error
	ListRooms(ctx context.Context, status, roomType string) ([]models.Room, error)
	UpdateRoomStatus(ctx context.Context, roomNumber, status string) error
	UpdateRoomStatusIf(ctx context.Context, roomNumber, from, to string) (bool, error)
}

type ReservationStore interface {
	FindReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ListReservations(ctx context.Context, activeOnly bool) ([]models.Reservation, error)
	SaveReservation(ctx context.Context, res *models.Reservation) (uint, error)
	UpdateReservation(ctx context.Context, res *models.Reservation) error
	DeleteReservation(ctx context.Context, id uint) (bool, error)
}

// BookingService sequences every cross-entity transition so that room status
// and reservation state are never observably inconsistent. Nothing else in
// the codebase mutates room status.
type BookingService struct {
	rooms        RoomStore
	reservations ReservationStore
}

func NewBookingService(rooms RoomStore, reservations ReservationStore) *BookingService {
	return &BookingService{rooms: rooms, reservations: reservations}
}

// AddRoom registers a new room; it comes up Available.
func (s *BookingService) AddRoom(ctx context.Context, roomNumber string, capacity int, roomType string, price float64, floor int, extraBed bool) (*models.Room, error) {
	room, err := models.NewRoom(roomNumber, capacity, roomType, price, floor, extraBed)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.SaveRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to save room %s: %w", roomNumber, err)
	}
	return room, nil
}

// Book creates a reservation for the room and flips it to Reserved. The
// availability precondition is re-checked at the point of mutation via the
// conditional status update, so two concurrent bookings of the same room
// cannot both succeed.
func (s *BookingService) Book(ctx context.Context, roomNumber string, guest *models.Guest, checkIn, checkOut time.Time) (*models.Reservation, error) {
	room, err := s.rooms.FindRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	res, err := models.NewReservation(guest, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	ok, err := s.rooms.UpdateRoomStatusIf(ctx, roomNumber, models.RoomStatusAvailable, models.RoomStatusReserved)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve room %s: %w", roomNumber, err)
	}
	if !ok {
		// Lost the race: someone grabbed the room between our read and the flip.
		return nil, models.ErrRoomNotAvailable
	}

	if _, err := s.reservations.SaveReservation(ctx, res); err != nil {
		// The room was flipped but the reservation never made it to storage;
		// release the room again before failing the whole operation.
		if _, rbErr := s.rooms.UpdateRoomStatusIf(ctx, roomNumber, models.RoomStatusReserved, models.RoomStatusAvailable); rbErr != nil {
			log.Printf("failed to release room %s after aborted booking: %v", roomNumber, rbErr)
		}
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}
	return res, nil
}

// ProcessPayment marks a reservation paid. Double payment is rejected.
func (s *BookingService) ProcessPayment(ctx context.Context, id uint) (*models.Reservation, error) {
	res, err := s.reservations.FindReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := res.ProcessPayment(); err != nil {
		return nil, err
	}
	if err := s.reservations.UpdateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to persist payment for reservation %d: %w", id, err)
	}
	return res, nil
}

// CheckIn admits the guest of a paid reservation and occupies the room.
func (s *BookingService) CheckIn(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, (*models.Reservation).CheckInGuest)
}

// CheckOut ends the stay and hands the room to cleaning.
func (s *BookingService) CheckOut(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, (*models.Reservation).CheckOutGuest)
}

// Cancel releases the room and marks the reservation Cancelled. The record
// is kept; it just stops showing up in active listings.
func (s *BookingService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, (*models.Reservation).Cancel)
}

// Extend moves the check-out forward and reprices the stay.
func (s *BookingService) Extend(ctx context.Context, id uint, newCheckOut time.Time) (*models.Reservation, error) {
	res, err := s.reservations.FindReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := res.Extend(newCheckOut); err != nil {
		return nil, err
	}
	if err := s.reservations.UpdateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to persist extension for reservation %d: %w", id, err)
	}
	return res, nil
}

// DeleteReservation removes the record entirely (administrative purge). If
// the reservation still held its room, the room is released first.
func (s *BookingService) DeleteReservation(ctx context.Context, id uint) (bool, error) {
	res, err := s.reservations.FindReservation(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrReservationNotFound) {
			return false, nil
		}
		return false, err
	}
	if res.IsActive() {
		if err := s.rooms.UpdateRoomStatus(ctx, res.RoomNumber, models.RoomStatusAvailable); err != nil {
			return false, fmt.Errorf("failed to release room %s: %w", res.RoomNumber, err)
		}
	}
	return s.reservations.DeleteReservation(ctx, id)
}

func (s *BookingService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.reservations.FindReservation(ctx, id)
}

func (s *BookingService) ListReservations(ctx context.Context, activeOnly bool) ([]models.Reservation, error) {
	return s.reservations.ListReservations(ctx, activeOnly)
}

func (s *BookingService) GetRoom(ctx context.Context, roomNumber string) (*models.Room, error) {
	return s.rooms.FindRoom(ctx, roomNumber)
}

func (s *BookingService) ListRooms(ctx context.Context, status, roomType string) ([]models.Room, error) {
	return s.rooms.ListRooms(ctx, status, roomType)
}

func (s *BookingService) AvailableRooms(ctx context.Context) ([]models.Room, error) {
	return s.rooms.ListRooms(ctx, models.RoomStatusAvailable, "")
}

// transition loads the reservation, applies the entity operation (which
// mutates room status in memory), then persists reservation and room in that
// order, undoing the reservation row if the room update fails.
func (s *BookingService) transition(ctx context.Context, id uint, op func(*models.Reservation) error) (*models.Reservation, error) {
	res, err := s.reservations.FindReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStatus := res.Status

	if err := op(res); err != nil {
		return nil, err
	}

	if err := s.reservations.UpdateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to persist reservation %d: %w", id, err)
	}
	if res.Room != nil {
		if err := s.rooms.UpdateRoomStatus(ctx, res.RoomNumber, res.Room.Status); err != nil {
			res.Status = prevStatus
			if rbErr := s.reservations.UpdateReservation(ctx, res); rbErr != nil {
				log.Printf("failed to roll back reservation %d after room update error: %v", id, rbErr)
			}
			return nil, fmt.Errorf("failed to persist room %s status: %w", res.RoomNumber, err)
		}
	}
	return res, nil
}
