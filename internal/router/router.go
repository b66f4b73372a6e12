package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookTest(c *ginext.Context)
	AddResult(c *ginext.Context)
	UserAppointments(c *ginext.Context)
	UserAppointmentResults(c *ginext.Context)
	AllAppointments(c *ginext.Context)
	SearchAppointments(c *ginext.Context)
	DeleteAppointment(c *ginext.Context)
	CreateTest(c *ginext.Context)
	GetTest(c *ginext.Context)
	ListTests(c *ginext.Context)
	UpdateTest(c *ginext.Context)
	DeleteTest(c *ginext.Context)
	QuoteCoupon(c *ginext.Context)
	CreatePaymentIntent(c *ginext.Context)
}

// InitRouter keeps the original public paths; auth resolves the principal,
// the authorization gate inside handlers decides admin rights.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Public
	router.POST("/booking-test", h.BookTest)
	router.POST("/coupon", h.QuoteCoupon)
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.GET("/tests", h.ListTests)
	router.GET("/tests/:id", h.GetTest)

	// Authenticated
	user := router.Group("/", auth)
	{
		user.GET("/user-appointments", h.UserAppointments)
		user.GET("/user-appointments/result", h.UserAppointmentResults)
		user.DELETE("/delete-appointment/:id", h.DeleteAppointment)
		user.DELETE("/delete-appointment/admin/:id", h.DeleteAppointment)

		// Admin rights checked by the authorization gate
		user.PUT("/add-result/:id", h.AddResult)
		user.GET("/all-appointments", h.AllAppointments)
		user.GET("/appointment/search", h.SearchAppointments)
		user.POST("/tests", h.CreateTest)
		user.PUT("/tests/:id", h.UpdateTest)
		user.DELETE("/tests/:id", h.DeleteTest)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
