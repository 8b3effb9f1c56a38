package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/controllers"
	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/realtime"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles every controller the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Room         *controllers.RoomController
	User         *controllers.UserController
	Reservation  *controllers.ReservationController
	Stats        *controllers.StatsController
	Menu         *controllers.MenuController
	Invoice      *controllers.InvoiceController
	Request      *controllers.RequestController
	Notification *controllers.NotificationController
	Setting      *controllers.SettingController
}

func SetupRouter(db *gorm.DB, hub *realtime.Hub, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ctrl.Auth.Signup)
			auth.POST("/signin", ctrl.Auth.Signin)
			auth.GET("/me", middleware.RequireAuth(db), ctrl.Auth.Me)
		}

		// token is passed as a query parameter because browsers cannot set
		// headers on a WebSocket handshake
		api.GET("/ws", realtime.Handler(hub))

		admin := api.Group("/admin",
			middleware.RequireAuth(db),
			middleware.RequireRole(models.RoleAdmin),
		)
		{
			rooms := admin.Group("/rooms")
			{
				// must stay before /:id
				rooms.GET("/available", ctrl.Room.Available)

				rooms.GET("", ctrl.Room.GetAll)
				rooms.GET("/:id", ctrl.Room.GetByID)
				rooms.POST("", ctrl.Room.Create)
				rooms.PUT("/:id", ctrl.Room.Update)
				rooms.DELETE("/:id", ctrl.Room.Delete)
			}

			users := admin.Group("/users")
			{
				users.GET("", ctrl.User.GetAll)
				users.POST("", ctrl.User.Create)
				users.PUT("/:id", ctrl.User.Update)
				users.DELETE("/:id", ctrl.User.Delete)
			}

			reservations := admin.Group("/reservations")
			{
				// must stay before /:id
				reservations.GET("/options", ctrl.Reservation.Options)

				reservations.GET("", ctrl.Reservation.GetAll)
				reservations.GET("/:id", ctrl.Reservation.GetByID)
				reservations.POST("", ctrl.Reservation.Create)
				reservations.PUT("/:id", ctrl.Reservation.Update)
				reservations.DELETE("/:id", ctrl.Reservation.Delete)
			}

			admin.GET("/stats", ctrl.Stats.AdminStats)

			menu := admin.Group("/menu")
			{
				menu.GET("", ctrl.Menu.GetAll)
				menu.POST("", ctrl.Menu.Create)
				menu.PUT("/:id", ctrl.Menu.Update)
				menu.DELETE("/:id", ctrl.Menu.Delete)
			}

			invoices := admin.Group("/invoices")
			{
				invoices.GET("", ctrl.Invoice.GetAll)
				invoices.POST("", ctrl.Invoice.Create)
				invoices.PUT("/:id", ctrl.Invoice.Update)
				invoices.DELETE("/:id", ctrl.Invoice.Delete)
			}

			requests := admin.Group("/requests")
			{
				requests.GET("", ctrl.Request.GetAll)
				requests.PUT("/:id", ctrl.Request.UpdateStatus)
				requests.DELETE("/:id", ctrl.Request.Delete)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("", ctrl.Setting.Get)
				settings.PUT("", ctrl.Setting.Update)
			}

			adminNotifs := admin.Group("/notifications")
			{
				adminNotifs.GET("", ctrl.Notification.List)
				adminNotifs.PUT("/read-all", ctrl.Notification.MarkAllRead)
				adminNotifs.PUT("/:id/read", ctrl.Notification.MarkRead)
				adminNotifs.DELETE("/all", ctrl.Notification.DeleteAll)
				adminNotifs.DELETE("/:id", ctrl.Notification.Delete)
			}
		}

		guest := api.Group("/guest",
			middleware.RequireAuth(db),
			middleware.RequireRole(models.RoleGuest),
		)
		{
			guest.GET("/dashboard", ctrl.Stats.GuestDashboard)

			bookings := guest.Group("/bookings")
			{
				bookings.GET("", ctrl.Reservation.ListMine)
				bookings.POST("", ctrl.Reservation.CreateMine)
			}

			guest.GET("/payments", ctrl.Invoice.ListMine)
			guest.GET("/menu", ctrl.Menu.GuestMenu)

			requests := guest.Group("/requests")
			{
				requests.GET("", ctrl.Request.ListMine)
				requests.POST("", ctrl.Request.CreateMine)
			}

			notifs := guest.Group("/notifications")
			{
				notifs.GET("", ctrl.Notification.List)
				notifs.PUT("/read-all", ctrl.Notification.MarkAllRead)
				notifs.PUT("/:id/read", ctrl.Notification.MarkRead)
				notifs.DELETE("/all", ctrl.Notification.DeleteAll)
				notifs.DELETE("/:id", ctrl.Notification.Delete)
			}
		}
	}

	return r
}
