package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-management-server/models"

	"gorm.io/gorm"
)

// ReservationRepository is the gorm-backed implementation of the booking
// service's ReservationStore. Loaded reservations always go through the
// rehydration path, which skips the new-booking preconditions: a stay whose
// room is currently Reserved or Occupied is valid history, not a bad booking.
type ReservationRepository struct {
	db    *gorm.DB
	rooms *RoomRepository
}

func NewReservationRepository(db *gorm.DB, rooms *RoomRepository) *ReservationRepository {
	return &ReservationRepository{db: db, rooms: rooms}
}

func (r *ReservationRepository) FindReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	var row models.Reservation
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return r.rehydrate(ctx, &row), nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, activeOnly bool) ([]models.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if activeOnly {
		q = q.Where("status IN ?", []string{models.ReservationStatusBooked, models.ReservationStatusCheckedIn})
	}

	var rows []models.Reservation
	if err := q.Order("check_in DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	roomsByNumber, err := r.roomsFor(ctx, rows)
	if err != nil {
		return nil, err
	}

	reservations := make([]models.Reservation, 0, len(rows))
	for i := range rows {
		res := r.rehydrateWith(&rows[i], roomsByNumber[rows[i].RoomNumber])
		reservations = append(reservations, *res)
	}
	return reservations, nil
}

func (r *ReservationRepository) SaveReservation(ctx context.Context, res *models.Reservation) (uint, error) {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return 0, fmt.Errorf("failed to save reservation: %w", err)
	}
	return res.ID, nil
}

func (r *ReservationRepository) UpdateReservation(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Save(res).Error; err != nil {
		return fmt.Errorf("failed to update reservation %d: %w", res.ID, err)
	}
	return nil
}

func (r *ReservationRepository) DeleteReservation(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete reservation %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ReservationRepository) rehydrate(ctx context.Context, row *models.Reservation) *models.Reservation {
	room, err := r.rooms.FindRoom(ctx, row.RoomNumber)
	if err != nil {
		// A reservation pointing at a missing room is still returned; the
		// operations that need the room will refuse to run on it.
		log.Printf("reservation %d references missing room %s: %v", row.ID, row.RoomNumber, err)
		room = nil
	}
	return r.rehydrateWith(row, room)
}

func (r *ReservationRepository) rehydrateWith(row *models.Reservation, room *models.Room) *models.Reservation {
	res := models.RehydrateReservation(
		row.ID, row.Guest, room,
		row.CheckIn, row.CheckOut,
		row.TotalPrice, row.Status, row.IsPaid, row.PaymentDate,
	)
	res.RoomNumber = row.RoomNumber
	res.CreatedAt = row.CreatedAt
	res.UpdatedAt = row.UpdatedAt
	return res
}

// roomsFor loads every referenced room in one query.
func (r *ReservationRepository) roomsFor(ctx context.Context, rows []models.Reservation) (map[string]*models.Room, error) {
	if len(rows) == 0 {
		return map[string]*models.Room{}, nil
	}
	numbers := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		if !seen[rows[i].RoomNumber] {
			seen[rows[i].RoomNumber] = true
			numbers = append(numbers, rows[i].RoomNumber)
		}
	}

	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("room_number IN ?", numbers).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms for reservations: %w", err)
	}
	byNumber := make(map[string]*models.Room, len(rooms))
	for i := range rooms {
		byNumber[rooms[i].RoomNumber] = &rooms[i]
	}
	return byNumber, nil
}
