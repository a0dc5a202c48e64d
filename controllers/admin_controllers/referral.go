package admin_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/controllers"
)

func GetMemberReferralTree(c *fiber.Ctx) error {
	return controllers.RenderReferralTree(c, c.Params("uid"))
}
