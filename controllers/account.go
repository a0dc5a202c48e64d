package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/controllers/entities"
	"github.com/refpay/refpay/controllers/helpers"
	"github.com/refpay/refpay/controllers/queries"
	"github.com/refpay/refpay/models"
	"github.com/refpay/refpay/types"
)

func GetBalance(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	return c.Status(200).JSON(entities.BuildMember(CurrentUser))
}

func GetTransactions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	err_src := new(helpers.Errors)
	params := new(queries.TransactionQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if len(params.OrderBy) == 0 {
		params.OrderBy = types.OrderByAsc
	}

	var transactions []*models.Transaction

	config.DataBase.
		Order("created_at "+params.OrderBy).
		Offset(params.Page*params.Limit - params.Limit).
		Limit(params.Limit).
		Find(&transactions, "member_id = ?", CurrentUser.ID)

	transaction_entities := make([]*entities.TransactionEntity, 0)
	for _, transaction := range transactions {
		transaction_entities = append(transaction_entities, entities.BuildTransaction(transaction))
	}

	c.Response().Header.Add("page", strconv.Itoa(params.Page))
	c.Response().Header.Add("per-page", strconv.Itoa(len(transactions)))

	return c.Status(200).JSON(transaction_entities)
}

func GetCommissions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	err_src := new(helpers.Errors)
	params := new(queries.CommissionQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}

	var commissions []*models.Commission

	config.DataBase.
		Order("id desc").
		Offset(params.Page*params.Limit - params.Limit).
		Limit(params.Limit).
		Find(&commissions, "member_id = ?", CurrentUser.ID)

	commission_entities := make([]*entities.CommissionEntity, 0)
	for _, commission := range commissions {
		commission_entities = append(commission_entities, entities.BuildCommission(commission))
	}

	c.Response().Header.Add("page", strconv.Itoa(params.Page))
	c.Response().Header.Add("per-page", strconv.Itoa(len(commissions)))

	return c.Status(200).JSON(commission_entities)
}
