package router

import (
	"net/http"
	"net/netip"
	"strings"

	"escape-booking/internal/handler"
	"escape-booking/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router. Bookings is nil
// when the record store cannot persist bookings.
type Handlers struct {
	Quotes    *handler.QuoteHandler
	Rooms     *handler.RoomHandler
	TimeSlots *handler.TimeSlotHandler
	Bookings  *handler.BookingHandler
}

// Options configures the router's middleware.
type Options struct {
	APIKey             string
	RateLimitPerSecond float64
	RateLimitBurst     int
	TrustedProxies     []netip.Prefix
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/quotes", h.Quotes.Quote)
	mux.HandleFunc("/api/promo-codes/validate", h.Quotes.ValidatePromo)
	mux.HandleFunc("/api/offers", h.Quotes.ListOffers)
	mux.HandleFunc("/api/time-slots", h.TimeSlots.List)

	// Room handler function
	roomRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Booked slots are read from the booking store
		if strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/booked-slots") {
			if h.Bookings == nil {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			h.Bookings.BookedSlots(w, r)
			return
		}

		// Check if this is a request for a specific room ID or slug
		if r.URL.Path != "/api/rooms" && r.URL.Path != "/api/rooms/" {
			h.Rooms.GetByID(w, r)
			return
		}
		h.Rooms.GetAll(w, r)
	}

	// Register room routes (both with and without trailing slash)
	mux.HandleFunc("/api/rooms", roomRouteHandler)
	mux.HandleFunc("/api/rooms/", roomRouteHandler)

	if h.Bookings != nil {
		adminGetBooking := middleware.APIKeyAuth(opts.APIKey, logger)(http.HandlerFunc(h.Bookings.GetByID))

		// Booking handler function
		bookingRouteHandler := func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/bookings" || r.URL.Path == "/api/bookings/" {
				h.Bookings.Create(w, r)
				return
			}

			// Reading a single booking is an admin operation
			if strings.HasPrefix(r.URL.Path, "/api/bookings/") {
				adminGetBooking.ServeHTTP(w, r)
				return
			}

			http.Error(w, "not found", http.StatusNotFound)
		}

		// Register booking routes (both with and without trailing slash)
		mux.HandleFunc("/api/bookings", bookingRouteHandler)
		mux.HandleFunc("/api/bookings/", bookingRouteHandler)
	}

	// Apply middleware in order: Recovery -> Logging -> CORS -> RateLimit
	var handler http.Handler = mux
	handler = middleware.RateLimit(opts.RateLimitPerSecond, opts.RateLimitBurst, opts.TrustedProxies, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
