// contact.go

package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	msgContactMissing  = "Missing required contact form fields (Full Name, Email, Phone, Message)."
	msgContactReceived = "Your message has been received successfully. Thank you!"
	msgContactInvalid  = "Contact form fields must be text or numbers."
)

// Messages are kept but never served back; only the count is observable.
func (a *API) submitContact(c *gin.Context) {
	var req ContactRequest
	if err := bindRequest(c, &req); err != nil {
		a.log.Warn("contact submission rejected", slog.Any("err", err))
		if errors.Is(err, ErrInvalidField) {
			c.JSON(400, gin.H{"error": msgContactInvalid})
			return
		}
		c.JSON(400, gin.H{"error": msgContactMissing})
		return
	}

	msg := req.toMessage()
	msg.ID = a.ids.Next()
	msg.ReceivedAt = time.Now().UTC()
	a.Messages.Append(msg)

	a.log.Info("contact message received",
		slog.Int64("id", msg.ID),
		slog.String("email", msg.Email),
		slog.Int("total", a.Messages.Len()),
	)

	c.JSON(200, gin.H{"message": msgContactReceived})
}
