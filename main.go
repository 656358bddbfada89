package main

import (
	"log"
	"os"

	"hotel-management-server/routes"
	"hotel-management-server/services"
	"hotel-management-server/storage"
	"hotel-management-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	godotenv.Load()
	db := storage.InitializeDB()
	storage.InitializeRedis()

	rooms := storage.NewRoomRepository(db)
	reservations := storage.NewReservationRepository(db, rooms)
	booking := services.NewBookingService(rooms, reservations)
	audit := utils.NewAuditor(db)

	roomHandler := routes.NewRoomHandler(booking, audit)
	reservationHandler := routes.NewReservationHandler(booking, audit)

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With, X-Staff-Name")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	room := app.Party("/api/rooms")
	{
		room.Post("/", roomHandler.AddRoom)
		room.Get("/", roomHandler.GetRooms)
		room.Get("/available", roomHandler.GetAvailableRooms)
		room.Get("/{number}", roomHandler.GetRoom)
	}

	reservation := app.Party("/api/reservations")
	{
		reservation.Post("/room/{number}", reservationHandler.Book)
		reservation.Get("/", reservationHandler.GetReservations)
		reservation.Get("/{id:uint}", reservationHandler.GetReservation)
		reservation.Post("/{id:uint}/payment", reservationHandler.ProcessPayment)
		reservation.Post("/{id:uint}/checkin", reservationHandler.CheckIn)
		reservation.Post("/{id:uint}/checkout", reservationHandler.CheckOut)
		reservation.Patch("/{id:uint}/extend", reservationHandler.Extend)
		reservation.Delete("/{id:uint}", reservationHandler.Cancel)
		reservation.Delete("/{id:uint}/purge", reservationHandler.Purge)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
