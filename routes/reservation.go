package routes

import (
	"context"
	"time"

	"hotel-management-server/models"
	"hotel-management-server/services"
	"hotel-management-server/utils"

	"github.com/kataras/iris/v12"
)

type ReservationHandler struct {
	booking *services.BookingService
	audit   *utils.Auditor
}

func NewReservationHandler(booking *services.BookingService, audit *utils.Auditor) *ReservationHandler {
	return &ReservationHandler{booking: booking, audit: audit}
}

type GuestInput struct {
	SSN         string `json:"ssn" validate:"required,min=14"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=11"`
	Email       string `json:"email" validate:"required,contains=@"`
}

type BookRoomInput struct {
	Guest    GuestInput `json:"guest" validate:"required"`
	CheckIn  time.Time  `json:"checkIn" validate:"required"`
	CheckOut time.Time  `json:"checkOut" validate:"required"`
}

// POST /api/reservations/room/{number}
func (h *ReservationHandler) Book(ctx iris.Context) {
	number := ctx.Params().Get("number")

	var input BookRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	guest, err := models.NewGuest(input.Guest.SSN, input.Guest.Name, input.Guest.PhoneNumber, input.Guest.Email)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	reservation, err := h.booking.Book(ctx.Request().Context(), number, guest, input.CheckIn, input.CheckOut)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	invalidateAvailableRoomsCache(ctx.Request().Context())
	h.audit.Record(ctx, "reservation.book", "reservation", reservation.ID, nil, reservation)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(reservation)
}

// GET /api/reservations?active=true
func (h *ReservationHandler) GetReservations(ctx iris.Context) {
	activeOnly, _ := ctx.URLParamBool("active")

	reservations, err := h.booking.ListReservations(ctx.Request().Context(), activeOnly)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"data": reservations})
}

// GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	reservation, err := h.booking.GetReservation(ctx.Request().Context(), id)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}
	ctx.JSON(reservation)
}

// POST /api/reservations/{id}/payment
func (h *ReservationHandler) ProcessPayment(ctx iris.Context) {
	h.lifecycle(ctx, "reservation.payment", h.booking.ProcessPayment)
}

// POST /api/reservations/{id}/checkin
func (h *ReservationHandler) CheckIn(ctx iris.Context) {
	h.lifecycle(ctx, "reservation.checkin", h.booking.CheckIn)
}

// POST /api/reservations/{id}/checkout
func (h *ReservationHandler) CheckOut(ctx iris.Context) {
	h.lifecycle(ctx, "reservation.checkout", h.booking.CheckOut)
}

// DELETE /api/reservations/{id}
func (h *ReservationHandler) Cancel(ctx iris.Context) {
	h.lifecycle(ctx, "reservation.cancel", h.booking.Cancel)
}

type ExtendReservationInput struct {
	CheckOut time.Time `json:"checkOut" validate:"required"`
}

// PATCH /api/reservations/{id}/extend
func (h *ReservationHandler) Extend(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input ExtendReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before, err := h.booking.GetReservation(ctx.Request().Context(), id)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	reservation, err := h.booking.Extend(ctx.Request().Context(), id, input.CheckOut)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	h.audit.Record(ctx, "reservation.extend", "reservation", reservation.ID, before, reservation)
	ctx.JSON(reservation)
}

// DELETE /api/reservations/{id}/purge
// Administrative removal of the record itself; an active reservation's room
// is released first.
func (h *ReservationHandler) Purge(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	deleted, err := h.booking.DeleteReservation(ctx.Request().Context(), id)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}
	if !deleted {
		utils.CreateNotFound(ctx)
		return
	}

	invalidateAvailableRoomsCache(ctx.Request().Context())
	h.audit.Record(ctx, "reservation.purge", "reservation", id, nil, nil)
	ctx.JSON(iris.Map{"deleted": true})
}

// lifecycle factors the shared load-transition-persist handler shape for the
// id-only operations.
func (h *ReservationHandler) lifecycle(ctx iris.Context, action string, op func(ctx context.Context, id uint) (*models.Reservation, error)) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	before, err := h.booking.GetReservation(ctx.Request().Context(), id)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	reservation, err := op(ctx.Request().Context(), id)
	if err != nil {
		utils.RespondDomainError(err, ctx)
		return
	}

	invalidateAvailableRoomsCache(ctx.Request().Context())
	h.audit.Record(ctx, action, "reservation", reservation.ID, before, reservation)
	ctx.JSON(reservation)
}
