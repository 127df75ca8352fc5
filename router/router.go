package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/controllers"
	"github.com/ardiente-ken/Lunchmates/middlewares"
	"github.com/ardiente-ken/Lunchmates/services"
)

func SetupRouter(db *gorm.DB, closer *services.AutoCloser) *gin.Engine {
	r := gin.Default()

	// Gin snapshots the handler chain per route at registration time, so
	// every engine-wide middleware must be added before the first route.
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	window := services.NewOrderingWindow(db, closer)
	reconciler := services.NewOrderReconciler(db)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewDailyMenuController(db)
	cutoffCtrl := controllers.NewCutoffController(db)
	statusCtrl := controllers.NewOrderStatusController(window)
	orderCtrl := controllers.NewOrderController(reconciler)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := api.Group("/users")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      EMPLOYEE ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/users/profile", userCtrl.GetProfile)

		auth.GET("/daily-menu", menuCtrl.GetTodayDailyMenu)
		auth.GET("/daily-menu/get", menuCtrl.GetTodayDailyMenu)

		auth.GET("/cutoff", cutoffCtrl.GetTodayCutOff)
		auth.GET("/cutoff/get", cutoffCtrl.GetTodayCutOff)

		auth.GET("/order/status", statusCtrl.GetOrderStatus)

		auth.POST("/order", orderCtrl.SubmitOrder)
		auth.POST("/order/submit", orderCtrl.SubmitOrder)
		auth.PUT("/order", orderCtrl.UpdateOrder)
		auth.PUT("/order/update", orderCtrl.UpdateOrder)
		auth.GET("/order", orderCtrl.GetTodaysOrder)
		auth.GET("/order/get", orderCtrl.GetTodaysOrder)
		auth.DELETE("/order", orderCtrl.CancelOrder)
		auth.DELETE("/order/cancel", orderCtrl.CancelOrder)
	}

	// ----------------------------------------------------------------
	//                      HR ROUTES
	// ----------------------------------------------------------------
	hr := api.Group("/")
	hr.Use(middlewares.AuthMiddleware(), middlewares.HROnly())
	{
		hr.GET("/users", userCtrl.GetAllUsers)

		hr.POST("/daily-menu/set", menuCtrl.InsertDailyMenu)
		hr.PUT("/daily-menu/update", menuCtrl.UpdateDailyMenuItem)
		hr.DELETE("/daily-menu/delete", menuCtrl.DeleteDailyMenuItem)

		hr.POST("/cutoff", cutoffCtrl.SetTodayCutOff)
		hr.POST("/cutoff/set", cutoffCtrl.SetTodayCutOff)

		hr.POST("/order/status", statusCtrl.SetOrderStatus)

		hr.GET("/order/all", orderCtrl.GetAllTodaysOrders)
		hr.GET("/order/get/all", orderCtrl.GetAllTodaysOrders)
	}

	return r
}
