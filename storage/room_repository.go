package storage

import (
	"context"
	"errors"
	"fmt"

	"hotel-management-server/models"

	"gorm.io/gorm"
)

// RoomRepository is the gorm-backed implementation of the booking service's
// RoomStore.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindRoom(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load room %s: %w", roomNumber, err)
	}
	return &room, nil
}

func (r *RoomRepository) SaveRoom(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("failed to save room %s: %w", room.RoomNumber, err)
	}
	return nil
}

func (r *RoomRepository) ListRooms(ctx context.Context, status, roomType string) ([]models.Room, error) {
	q := r.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) UpdateRoomStatus(ctx context.Context, roomNumber, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %s status: %w", roomNumber, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrRoomNotFound
	}
	return nil
}

// UpdateRoomStatusIf flips the status only when the current value matches
// `from`. With zero rows affected the caller lost the race (or the room does
// not exist); either way the precondition no longer holds.
func (r *RoomRepository) UpdateRoomStatusIf(ctx context.Context, roomNumber, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_number = ? AND status = ?", roomNumber, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update room %s status: %w", roomNumber, res.Error)
	}
	return res.RowsAffected > 0, nil
}
