package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/controllers/helpers"
	"github.com/refpay/refpay/models"
	"github.com/refpay/refpay/referral"
)

const referralTreeCacheTTL = 60 * time.Second

func GetReferralTree(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	return RenderReferralTree(c, CurrentUser.UID)
}

// RenderReferralTree serves the reconstructed tree containing uid, cached
// briefly in redis since reconstruction reads the whole subtree.
func RenderReferralTree(c *fiber.Ctx, uid string) error {
	cache_key := "refpay:" + uid + ":referral_tree"

	cached := &referral.TreeNode{}
	if err := config.Redis.GetKey(cache_key, cached); err == nil {
		return c.Status(200).JSON(cached)
	}

	builder := referral.NewTreeBuilder(referral.NewGormStore(config.DataBase))

	tree, err := builder.BuildTree(uid)
	if err != nil {
		if errors.Is(err, referral.ErrMemberNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{"referral.tree.member_not_found"},
			})
		}

		config.Logger.Errorf("Failed to build referral tree for %s: %v", uid, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	config.Redis.SetKey(cache_key, tree, referralTreeCacheTTL)

	return c.Status(200).JSON(tree)
}
