package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korbahq/korba-app/utils"
)

type ReservationController struct{}

func NewReservationController() *ReservationController {
	return &ReservationController{}
}

type reservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests string `json:"guests" binding:"required"`
	Notes  string `json:"notes"`
}

// Create -> Filling to Confirmed. Nothing is persisted; the confirmation just
// echoes the booking back with a reference. Another booking is simply another
// request.
func (rc *ReservationController) Create(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reference := "RES-" + uuid.NewString()[:8]

	utils.InfoLogger.Printf("Reservation %s: %s guests on %s at %s", reference, req.Guests, req.Date, req.Time)

	utils.RespondJSON(c, http.StatusOK, "Reservation confirmed", gin.H{
		"state":     "confirmed",
		"reference": reference,
		"name":      req.Name,
		"date":      req.Date,
		"time":      req.Time,
		"guests":    req.Guests,
	})
}
