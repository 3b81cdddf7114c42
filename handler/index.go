package handler

import "cafeteria_manager/service"

var (
	Hub       *service.Hub
	Orders    *service.OrderService
	Mailer    *service.Mailer
	Analytics *service.AnalyticsService
)

// Init hands the handlers their collaborators. Called once from main
// after the service container is built.
func Init(hub *service.Hub, orders *service.OrderService, mailer *service.Mailer, analytics *service.AnalyticsService) {
	Hub = hub
	Orders = orders
	Mailer = mailer
	Analytics = analytics
}
