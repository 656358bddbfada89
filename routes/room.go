package routes

import (
	"context"
	"encoding/json"
	"time"

	"hotel-management-server/models"
	"hotel-management-server/services"
	"hotel-management-server/storage"
	"hotel-management-server/utils"

	"github.com/kataras/iris/v12"
)

const (
	availableRoomsCacheKey = "rooms:available"
	availableRoomsCacheTTL = 30 * time.Second
)

type RoomHandler struct {
	booking *services.BookingService
	audit   *utils.Auditor
}

func NewRoomHandler(booking *services.BookingService, audit *utils.Auditor) *RoomHandler {
	return &RoomHandler{booking: booking, audit: audit}
}

type AddRoomInput struct {
	RoomNumber string  `json:"roomNumber" validate:"required"`
	Capacity   int     `json:"capacity" validate:"required,gte=1,lte=10"`
	RoomType   string  `json:"roomType" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Floor      int     `json:"floor" validate:"gte=0"`
	ExtraBed   bool    `json:"extraBed"`
}

// POST /api/rooms
func (h *RoomHandler) AddRoom(ctx iris.Context) {
	var input AddRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	room, err := h.booking.AddRoom(ctx.Request().Context(),
		input.RoomNumber, input.Capacity, input.RoomType, input.Price, input.Floor, input.ExtraBed)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	invalidateAvailableRoomsCache(ctx.Request().Context())
	h.audit.Record(ctx, "room.add", "room", room.ID, nil, room)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(room)
}

// GET /api/rooms?status=&type=
func (h *RoomHandler) GetRooms(ctx iris.Context) {
	status := ctx.URLParamDefault("status", "")
	roomType := ctx.URLParamDefault("type", "")

	if roomType != "" {
		canonical, err := models.CanonicalRoomType(roomType)
		if err != nil {
			utils.RespondDomainError(err, ctx)
			return
		}
		roomType = canonical
	}

	rooms, err := h.booking.ListRooms(ctx.Request().Context(), status, roomType)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"data": rooms})
}

// GET /api/rooms/{number}
func (h *RoomHandler) GetRoom(ctx iris.Context) {
	number := ctx.Params().Get("number")

	room, err := h.booking.GetRoom(ctx.Request().Context(), number)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}
	ctx.JSON(room)
}

// GET /api/rooms/available
// The listing is hammered by every booking screen, so it is served from a
// short-TTL Redis key; any status transition drops the key.
func (h *RoomHandler) GetAvailableRooms(ctx iris.Context) {
	rctx := ctx.Request().Context()

	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(rctx, availableRoomsCacheKey).Result(); err == nil && cached != "" {
			ctx.ContentType("application/json")
			ctx.WriteString(cached)
			return
		}
	}

	rooms, err := h.booking.AvailableRooms(rctx)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	payload, err := json.Marshal(iris.Map{"data": rooms})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if storage.Redis != nil {
		storage.Redis.Set(rctx, availableRoomsCacheKey, string(payload), availableRoomsCacheTTL)
	}
	ctx.ContentType("application/json")
	ctx.Write(payload)
}

func invalidateAvailableRoomsCache(ctx context.Context) {
	if storage.Redis != nil {
		storage.Redis.Del(ctx, availableRoomsCacheKey)
	}
}
