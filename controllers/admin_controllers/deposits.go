package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/controllers/entities"
	"github.com/refpay/refpay/controllers/helpers"
	"github.com/refpay/refpay/referral"
)

// CreateMemberDeposit applies a deposit on behalf of any member, the
// back-office path for gateway settlements reconciled by hand.
func CreateMemberDeposit(c *fiber.Ctx) error {
	uid := c.Params("uid")

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

	result, err := distributor.ProcessDeposit(uid, payload.Amount, payload.Method, payload.TID)
	if err != nil {
		if errors.Is(err, referral.ErrMemberNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{"admin.deposit.member_not_found"},
			})
		}
		if errors.Is(err, referral.ErrInvalidAmount) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"admin.deposit.non_positive_amount"},
			})
		}

		config.Logger.Errorf("Admin deposit failed for %s: %v", uid, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	result.Transaction.TriggerEvent()
	result.Transaction.WriteToInflux()

	return c.Status(201).JSON(fiber.Map{
		"member":            entities.BuildMember(result.Member),
		"total_distributed": result.TotalDistributed,
		"transaction":       entities.BuildTransaction(result.Transaction),
	})
}
