// api.go

package main

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// API owns the three resource stores. Nothing is written to disk; a restart
// starts from empty stores.
type API struct {
	Cart         *Store[CartItem]
	Appointments *Store[Appointment]
	Messages     *Store[ContactMessage]

	ids        *IDSequence
	log        *slog.Logger
	renderXLSX func(io.Writer, []Appointment) error
}

func NewAPI(log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{
		Cart:         NewStore(func(item CartItem) string { return item.Name }),
		Appointments: NewStore[Appointment](nil),
		Messages:     NewStore[ContactMessage](nil),
		ids:          NewIDSequence(),
		log:          log,
		renderXLSX:   writeAppointmentsXLSX,
	}
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(cfg Config, a *API) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS(cfg.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		// Cart
		api.GET("/cart", a.getCart)
		api.POST("/cart/add", a.addToCart)

		// Appointments
		api.GET("/appointments", a.listAppointments)
		api.POST("/appointments/book", a.bookAppointment)
		api.GET("/appointments/export", a.exportAppointments)

		// Contact
		api.POST("/contact", a.submitContact)
	}

	return r
}
