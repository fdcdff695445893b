// validate.go

package main

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	// Present but unusable price or quantity: not a number, negative, or a
	// fractional quantity.
	ErrInvalidNumber = errors.New("invalid number")
	// A present form field that is neither a string nor a number.
	ErrInvalidField = errors.New("invalid field value")
	ErrInvalidBody  = errors.New("invalid request body")
)

// Largest quantity a single cart line may hold.
const maxQuantity = math.MaxInt32

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrMissingFields }

var registerOnce sync.Once

// registerValidators teaches gin's validator to report json field names and
// to compare Amount values as float64.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if a, ok := field.Interface().(Amount); ok {
				f, _ := a.Float64()
				return f
			}
			return nil
		}, Amount{})
	})
}

// bindRequest decodes the JSON body into req and checks its binding rules.
// Errors wrap ErrMissingFields, ErrInvalidNumber, ErrInvalidField or
// ErrInvalidBody.
func bindRequest(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var missing []string
		for _, fe := range verrs {
			if fe.Tag() != "required" {
				// only the numeric fields carry rules besides required
				return fmt.Errorf("%s: %w", fe.Field(), ErrInvalidNumber)
			}
			missing = append(missing, fe.Field())
		}
		return &ValidationError{Fields: missing}
	}
	if errors.Is(err, ErrInvalidNumber) || errors.Is(err, ErrInvalidField) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidBody, err)
}

// ----- Normalization -----

func (r CartAddRequest) toItem() (CartItem, error) {
	if !r.Quantity.IsInteger() || r.Quantity.GreaterThan(decimal.NewFromInt(maxQuantity)) {
		return CartItem{}, fmt.Errorf("quantity %s: %w", r.Quantity.String(), ErrInvalidNumber)
	}
	price, _ := r.Price.Float64()
	return CartItem{
		Name:     r.Name,
		Price:    price,
		Image:    r.Image,
		Quantity: int(r.Quantity.IntPart()),
	}, nil
}

func (r BookAppointmentRequest) toAppointment() Appointment {
	return Appointment{
		Type:  string(r.Type),
		Name:  string(r.Name),
		Date:  string(r.Date),
		Time:  string(r.Time),
		Notes: string(r.Notes),
	}
}

func (r ContactRequest) toMessage() ContactMessage {
	return ContactMessage{
		Fullname:    string(r.Fullname),
		Email:       string(r.Email),
		CountryCode: string(r.CountryCode),
		Phone:       string(r.Phone),
		Message:     string(r.Message),
	}
}
