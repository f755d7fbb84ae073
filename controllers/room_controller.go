package controllers

import (
	"net/http"
	"strconv"

	"admin-backend/services"
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc     *services.RoomService
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomController(rs *services.RoomService, rts *services.RoomTypeService) *RoomController {
	return &RoomController{RoomSvc: rs, RoomTypeSvc: rts}
}

// ----------------------------------------------------
// Get Rooms (GET /api/rooms?available=true)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.Query("available"))

	rooms, err := ctrl.RoomSvc.List(c.Request.Context(), availableOnly)
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// Get Room Types (GET /api/room-types)
// ----------------------------------------------------

func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypeSvc.All(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.MsgInternal)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}
