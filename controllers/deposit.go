package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/controllers/entities"
	"github.com/refpay/refpay/controllers/helpers"
	"github.com/refpay/refpay/models"
	"github.com/refpay/refpay/referral"
)

func CreateDeposit(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	err_src := new(helpers.Errors)
	payload := new(helpers.CreateDepositParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	distributor := referral.NewDistributor(referral.NewGormStore(config.DataBase))

	result, err := distributor.ProcessDeposit(CurrentUser.UID, payload.Amount, payload.Method, payload.TID)
	if err != nil {
		return renderDepositError(c, err)
	}

	result.Transaction.TriggerEvent()
	result.Transaction.WriteToInflux()

	return c.Status(201).JSON(fiber.Map{
		"member":            entities.BuildMember(result.Member),
		"total_distributed": result.TotalDistributed,
		"transaction":       entities.BuildTransaction(result.Transaction),
	})
}

func renderDepositError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, referral.ErrMemberNotFound):
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"account.deposit.member_not_found"},
		})
	case errors.Is(err, referral.ErrInvalidAmount):
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.deposit.non_positive_amount"},
		})
	default:
		config.Logger.Errorf("Deposit failed: %v", err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}
}
