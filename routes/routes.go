package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/controllers"
	"github.com/refpay/refpay/controllers/admin_controllers"
	"github.com/refpay/refpay/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	account := app.Group("/api/v2/account", middlewares.Authenticate)
	account.Get("/balance", controllers.GetBalance)
	account.Post("/deposits", controllers.CreateDeposit)
	account.Get("/transactions", controllers.GetTransactions)
	account.Get("/commissions", controllers.GetCommissions)
	account.Get("/referral_tree", controllers.GetReferralTree)

	admin := app.Group("/api/v2/admin", middlewares.Authenticate, middlewares.AdminVaildator)
	admin.Post("/members/:uid/deposits", admin_controllers.CreateMemberDeposit)
	admin.Get("/members/:uid/referral_tree", admin_controllers.GetMemberReferralTree)

	return app
}
