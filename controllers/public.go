package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now().Unix())
}
