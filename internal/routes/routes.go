package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/handlers"
	"TRAVELPLANNER_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	healthHandler *handlers.HealthHandler,
	planHandler *handlers.PlanHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
) {
	jwtCfg := &cfg.JWT
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/google/login", googleAuthHandler.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", googleAuthHandler.GoogleCallback)
	http.HandleFunc("/api/auth/profile", protected(authHandler.GetProfile))
	http.HandleFunc("/api/auth/preferences", protected(authHandler.UpdatePreferences))

	// Itinerary planning
	http.HandleFunc("/api/plan", protected(planHandler.GenerateItineraries))

	// Bookings
	http.HandleFunc("/api/bookings/flight", protected(bookingHandler.BookFlight))
	http.HandleFunc("/api/bookings/hotel", protected(bookingHandler.BookHotel))
	http.HandleFunc("/api/bookings/activity", protected(bookingHandler.BookActivity))
	http.HandleFunc("/api/bookings/cancel", protected(bookingHandler.CancelBooking))
	http.HandleFunc("/api/bookings/history", protected(bookingHandler.GetBookingHistory))

	// Payments
	http.HandleFunc("/api/payments/process", protected(paymentHandler.ProcessPayment))
	http.HandleFunc("/api/payments/refund", protected(paymentHandler.RefundPayment))

	// Itinerary export
	http.HandleFunc("/api/export/calendar", protected(exportHandler.ExportCalendar))
	http.HandleFunc("/api/export/text", protected(exportHandler.ExportText))
	http.HandleFunc("/api/export/pdf", protected(exportHandler.ExportPDF))

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Travel Planner backend is running."))
}
