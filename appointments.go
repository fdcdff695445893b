// appointments.go

package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	msgAppointmentMissing = "Missing required appointment details (type, name, date, time)."
	msgAppointmentBooked  = "Appointment booked successfully."
	msgAppointmentInvalid = "Appointment details must be text or numbers."
)

func (a *API) listAppointments(c *gin.Context) {
	c.JSON(200, a.Appointments.List())
}

func (a *API) bookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := bindRequest(c, &req); err != nil {
		a.log.Warn("appointment booking rejected", slog.Any("err", err))
		if errors.Is(err, ErrInvalidField) {
			c.JSON(400, gin.H{"error": msgAppointmentInvalid})
			return
		}
		c.JSON(400, gin.H{"error": msgAppointmentMissing})
		return
	}

	appt := req.toAppointment()
	appt.ID = a.ids.Next()
	appt.BookedAt = time.Now().UTC()
	a.Appointments.Append(appt)

	a.log.Info("appointment booked",
		slog.Int64("id", appt.ID),
		slog.String("type", appt.Type),
		slog.String("name", appt.Name),
		slog.String("date", appt.Date),
		slog.String("time", appt.Time),
	)

	c.JSON(201, gin.H{"message": msgAppointmentBooked, "appointment": appt})
}
