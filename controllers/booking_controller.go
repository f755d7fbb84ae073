// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"admin-backend/middleware"
	"admin-backend/services"
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

const bookingsIndexPath = "/bookings"

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc  *services.BookingService
	RoomSvc     *services.RoomService
	CustomerSvc *services.CustomerService
}

func NewBookingController(bs *services.BookingService, rs *services.RoomService, cs *services.CustomerService) *BookingController {
	return &BookingController{BookingSvc: bs, RoomSvc: rs, CustomerSvc: cs}
}

// ---------------------------
// 1) List + stats (GET /api/bookings)
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	ctx := c.Request.Context()

	bookings, err := ctrl.BookingSvc.List(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}
	stats, err := ctrl.BookingSvc.Stats(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"stats":    stats,
	})
}

// ---------------------------
// 2) Booking detail (GET /api/bookings/:id)
// ---------------------------

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

// ---------------------------
// 3) Create form data (GET /api/bookings/form)
// ---------------------------

func (ctrl *BookingController) GetBookingForm(c *gin.Context) {
	ctx := c.Request.Context()

	customers, err := ctrl.CustomerSvc.All(ctx)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	rooms, err := ctrl.RoomSvc.List(ctx, true)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"customers": customers,
		"rooms":     rooms,
	})
}

// ---------------------------
// 4) Create / Update / Delete
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload services.CreateBookingInput
	if !bindJSON(c, &payload) {
		return
	}

	booking, err := ctrl.BookingSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}

	utils.JSONAction(c, http.StatusCreated, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgBookingCreated),
		Redirect: bookingsIndexPath,
		Data:     gin.H{"id": booking.ID},
	})
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload services.UpdateBookingInput
	if !bindJSON(c, &payload) {
		return
	}

	booking, err := ctrl.BookingSvc.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}

	utils.JSONAction(c, http.StatusOK, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgBookingUpdated),
		Redirect: bookingsIndexPath,
		Data:     gin.H{"id": booking.ID, "status": booking.Status},
	})
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, utils.MsgBookingNotFound)
		return
	}

	utils.JSONAction(c, http.StatusOK, utils.ActionResult{
		Message:  utils.T(middleware.Locale(c), utils.MsgBookingDeleted),
		Redirect: bookingsIndexPath,
	})
}
