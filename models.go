// models.go

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

type Appointment struct {
	ID       int64     `json:"id"`
	Type     string    `json:"type"` // Doctor, Nutritionist, Trainer, ...
	Name     string    `json:"name"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Notes    string    `json:"notes"`
	BookedAt time.Time `json:"bookedAt"`
}

type ContactMessage struct {
	ID          int64     `json:"id"`
	Fullname    string    `json:"fullname"`
	Email       string    `json:"email"`
	CountryCode string    `json:"countryCode,omitempty"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

// ----- Requests -----

// Amount is a JSON number that also accepts numeric strings like "5.50".
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if err := a.Decimal.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumber, b)
	}
	return nil
}

// Text is a form field that accepts a JSON string or a JSON number. Numbers
// keep their literal text, so a phone sent as 9876543210 stays "9876543210".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		*t = Text(s)
		return nil
	case raw != "" && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')):
		*t = Text(raw)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, raw)
}

type CartAddRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    *Amount `json:"price" binding:"required,gte=0"`
	Image    string  `json:"image"`
	Quantity *Amount `json:"quantity" binding:"required,gte=0"`
}

type BookAppointmentRequest struct {
	Type  Text `json:"type" binding:"required"`
	Name  Text `json:"name" binding:"required"`
	Date  Text `json:"date" binding:"required"`
	Time  Text `json:"time" binding:"required"`
	Notes Text `json:"notes"`
}

type ContactRequest struct {
	Fullname    Text `json:"fullname" binding:"required"`
	Email       Text `json:"email" binding:"required"`
	CountryCode Text `json:"countryCode"`
	Phone       Text `json:"phone" binding:"required"`
	Message     Text `json:"message" binding:"required"`
}
