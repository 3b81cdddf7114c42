package router

import (
	"cafeteria_manager/handler"
	"cafeteria_manager/middleware"
	"cafeteria_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/send-otp", handler.SendOTP)
	auth.Post("/verify-otp", handler.VerifyOTP)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Put("/me", middleware.Protected(), handler.UpdateProfile)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)
	menu.Get("/all", middleware.Protected(), middleware.StaffOnly(), handler.GetMenuItems)
	menu.Post("/", middleware.Protected(), middleware.StaffOnly(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:menuItemId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("menuItemId"), validate.EditMenuItem(), handler.EditMenuItem)
	menu.Delete("/", middleware.Protected(), middleware.StaffOnly(), validate.Delete(), handler.DeleteMenuItems)
	menu.Delete("/:menuItemId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("menuItemId"), handler.DeleteMenuItem)
	menu.Post("/:menuItemId/photo", middleware.Protected(), middleware.StaffOnly(), validate.GetById("menuItemId"), handler.UploadMenuItemPhoto)

	v1.Post("/cloudinary-signature", middleware.Protected(), middleware.StaffOnly(), handler.GenerateSignature)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCart)
	cart.Post("/items", middleware.Protected(), validate.AddCartItem(), handler.AddCartItem)
	cart.Put("/items/:itemId", middleware.Protected(), validate.GetById("itemId"), validate.UpdateCartItem(), handler.UpdateCartItem)
	cart.Delete("/items/:itemId", middleware.Protected(), validate.GetById("itemId"), handler.RemoveCartItem)
	cart.Delete("/", middleware.Protected(), handler.ClearCart)

	order := v1.Group("/orders", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/", middleware.Protected(), handler.GetMyOrders)
	order.Get("/all", middleware.Protected(), middleware.StaffOnly(), handler.GetAllOrders)
	order.Get("/:orderCode", middleware.Protected(), handler.GetOrderDetail)
	order.Put("/:orderId/status", middleware.Protected(), middleware.StaffOnly(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Put("/:orderId/cancel", middleware.Protected(), middleware.StaffOnly(), validate.GetById("orderId"), handler.CancelOrder)

	reservation := v1.Group("/reservations", logger.New())
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Get("/", middleware.Protected(), handler.GetMyReservations)
	reservation.Put("/:reservationId/cancel", middleware.Protected(), validate.GetById("reservationId"), handler.CancelMyReservation)
	reservation.Get("/all", middleware.Protected(), middleware.StaffOnly(), handler.GetAllReservations)
	reservation.Put("/:reservationId/confirm", middleware.Protected(), middleware.StaffOnly(), validate.GetById("reservationId"), handler.ConfirmReservation)
	reservation.Put("/:reservationId/reject", middleware.Protected(), middleware.StaffOnly(), validate.GetById("reservationId"), handler.CancelReservation)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Get("/", middleware.Protected(), middleware.StaffOnly(), handler.GetInventory)
	inventory.Get("/low-stock", middleware.Protected(), middleware.StaffOnly(), handler.GetLowStockItems)
	inventory.Post("/", middleware.Protected(), middleware.StaffOnly(), validate.CreateInventoryItem(), handler.CreateInventoryItem)
	inventory.Put("/:inventoryId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("inventoryId"), validate.EditInventoryItem(), handler.EditInventoryItem)
	inventory.Delete("/:inventoryId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("inventoryId"), handler.DeleteInventoryItem)

	promotion := v1.Group("/promotions", logger.New())
	promotion.Get("/", handler.GetActivePromotions)
	promotion.Get("/validate/:code", middleware.Protected(), handler.ValidatePromotion)
	promotion.Get("/all", middleware.Protected(), middleware.StaffOnly(), handler.GetPromotions)
	promotion.Post("/", middleware.Protected(), middleware.StaffOnly(), validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:promotionId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("promotionId"), validate.EditPromotion(), handler.EditPromotion)
	promotion.Delete("/:promotionId", middleware.Protected(), middleware.StaffOnly(), validate.GetById("promotionId"), handler.DeletePromotion)

	helpdesk := v1.Group("/helpdesk", logger.New())
	helpdesk.Post("/", middleware.Protected(), validate.CreateTicket(), handler.CreateTicket)
	helpdesk.Get("/", middleware.Protected(), handler.GetMyTickets)
	helpdesk.Get("/all", middleware.Protected(), middleware.StaffOnly(), handler.GetAllTickets)
	helpdesk.Post("/:ticketId/reply", middleware.Protected(), validate.GetById("ticketId"), validate.ReplyTicket(), handler.ReplyTicket)
	helpdesk.Put("/:ticketId/resolve", middleware.Protected(), middleware.StaffOnly(), validate.GetById("ticketId"), handler.ResolveTicket)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Post("/", middleware.Protected(), validate.CreateFeedback(), handler.CreateFeedback)
	feedback.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAllFeedback)

	report := v1.Group("/reports", logger.New())
	report.Get("/sales", middleware.Protected(), middleware.StaffOnly(), handler.GetSalesReport)
	report.Get("/popular-items", middleware.Protected(), middleware.StaffOnly(), handler.GetPopularItemsReport)

	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())
	admin.Get("/dashboard-stats", handler.GetDashboardStats)
	admin.Get("/sales-data", handler.GetSalesData)
	admin.Get("/users", handler.GetUsers)
	admin.Post("/users", validate.RegisterUser(), handler.CreateUser)
	admin.Delete("/users/:userId", validate.GetById("userId"), handler.DeleteUser)
	admin.Get("/pending-registrations", handler.GetPendingRegistrations)
	admin.Put("/pending-registrations/:userId", validate.GetById("userId"), handler.ApproveRegistration)
	admin.Get("/user-activity", handler.GetUserActivity)

	v1.Get("/ws", handler.WebsocketUpgrade, handler.WebsocketHandler)
}
