package routes

import (
	"net/http"

	"shubharambh/admin"
	"shubharambh/appointments"
	"shubharambh/auth"
	"shubharambh/catalog"
	"shubharambh/concierge"
	"shubharambh/middleware"
	"shubharambh/passes"
	"shubharambh/quotes"
	"shubharambh/ratelim"
	"shubharambh/uploads"
	"shubharambh/vendors"
	"shubharambh/venues"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/listingpic/*filepath", http.Dir("static/listingpic"))
	router.ServeFiles("/static/defaults/*filepath", http.Dir("static/defaults"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/categories", catalog.GetCategories)
	router.GET("/api/categories/:category", catalog.GetCategory)
}

func AddVenueRoutes(router *httprouter.Router) {
	router.GET("/api/venues", venues.GetAll)
	router.GET("/api/venues/:venueid", middleware.OptionalAuth(venues.GetVenue))
	router.GET("/api/categories/:category/venues", venues.GetByCategory)
	router.GET("/api/categories/:category/cities", venues.DistinctCities)
}

func AddVendorRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/vendors/me", middleware.Authenticate(vendors.GetMyVendor))
	router.GET("/api/vendors/me/listings", middleware.Authenticate(vendors.GetMyListings))
	router.GET("/api/vendors/me/quotes", middleware.Authenticate(quotes.GetVendorQuotes))
	router.GET("/api/vendors/me/appointments", middleware.Authenticate(appointments.GetVendorAppointments))
	router.POST("/api/vendors/listings", rl.Limit(middleware.Authenticate(vendors.SubmitListing)))
	router.POST("/api/vendors/listings/:venueid/images", middleware.Authenticate(uploads.AttachListingImage))
	router.PUT("/api/vendors/listings/:venueid", middleware.Authenticate(venues.EditListing))
	router.DELETE("/api/vendors/listings/:venueid", middleware.Authenticate(venues.DeleteListing))
}

func AddQuoteRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/quotes", rl.Limit(middleware.Authenticate(quotes.CreateQuote)))
	router.GET("/api/user/quotes", middleware.Authenticate(quotes.GetMyQuotes))
	router.POST("/api/quotes/:quoteid/respond", middleware.Authenticate(quotes.RespondToQuote))
}

func AddAppointmentRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/appointments", rl.Limit(middleware.Authenticate(appointments.CreateAppointment)))
	router.GET("/api/user/appointments", middleware.Authenticate(appointments.GetMyAppointments))
	router.POST("/api/appointments/:appointmentid/decide", middleware.Authenticate(appointments.DecideAppointment))
	router.POST("/api/appointments/:appointmentid/cancel", middleware.Authenticate(appointments.CancelAppointment))
	router.GET("/api/appointments/:appointmentid/pass", middleware.Authenticate(passes.PrintPass))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/vendors", middleware.RequireRole("admin", admin.ListVendors))
	router.POST("/api/admin/vendors/:vendorid/approve", middleware.RequireRole("admin", admin.ApproveVendor))
	router.POST("/api/admin/vendors/:vendorid/reject", middleware.RequireRole("admin", admin.RejectVendor))
	router.DELETE("/api/admin/vendors/:vendorid", middleware.RequireRole("admin", admin.DeleteVendor))
}

func AddConciergeRoutes(router *httprouter.Router, hub *concierge.Hub, rl *ratelim.RateLimiter) {
	router.GET("/ws/concierge", rl.Limit(concierge.WebSocketHandler(hub)))
}
