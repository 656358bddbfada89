package utils

import (
	"errors"
	"fmt"

	"hotel-management-server/models"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"status": statusCode,
		"title":  title,
		"detail": detail,
	})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"An internal server error occurred", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

type validationErrorItem struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

// HandleValidationErrors formats go-playground/validator failures from
// ctx.ReadJSON; anything else becomes a plain 400.
func HandleValidationErrors(err error, ctx iris.Context) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		items := make([]validationErrorItem, 0, len(errs))
		for _, e := range errs {
			items = append(items, validationErrorItem{
				ActualTag: e.ActualTag(),
				Namespace: e.Namespace(),
				Kind:      e.Kind().String(),
				Type:      e.Type().String(),
				Value:     fmt.Sprintf("%v", e.Value()),
				Param:     e.Param(),
			})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"validationErrors": items})
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", err.Error(), ctx)
}

// RespondDomainError maps the domain error taxonomy onto HTTP statuses:
// validation 400, state conflicts 409, not-found 404, everything else 500.
func RespondDomainError(err error, ctx iris.Context) {
	switch {
	case models.IsValidation(err):
		JSONError(ctx, iris.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, models.ErrRoomNotAvailable),
		errors.Is(err, models.ErrAlreadyPaid),
		errors.Is(err, models.ErrPaymentRequired),
		errors.Is(err, models.ErrReservationClosed),
		errors.Is(err, models.ErrRoomNotLoaded):
		JSONError(ctx, iris.StatusConflict, "illegal_state", err.Error())
	case errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrReservationNotFound):
		JSONError(ctx, iris.StatusNotFound, "not_found", err.Error())
	default:
		JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
	}
}
