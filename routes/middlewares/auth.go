package middlewares

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/models"
	"github.com/refpay/refpay/referral"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
	ServerInternalError = "server.internal_error"
)

// Auth struct represents parsed jwt information.
type Auth struct {
	UID        string   `json:"uid"`
	State      string   `json:"state"`
	Email      string   `json:"email"`
	Username   string   `json:"username"`
	Role       string   `json:"role"`
	ReferralID string   `json:"referral_id"`
	Audience   []string `json:"aud,omitempty"`

	jwt.StandardClaims
}

func Authenticate(c *fiber.Ctx) error {
	var auth Auth

	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	token = strings.Replace(token, "Bearer ", "", -1)

	public_key_pem, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_PUBLIC_KEY"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"errors": []string{ServerInternalError},
		})
	}

	public_key, err := jwt.ParseRSAPublicKeyFromPEM(public_key_pem)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"errors": []string{ServerInternalError},
		})
	}

	_, err = jwt.ParseWithClaims(token, &auth, func(t *jwt.Token) (interface{}, error) {
		return public_key, nil
	})

	if err != nil {
		return c.Status(422).JSON(fiber.Map{
			"errors": []string{JwtDecodeAndVerify},
		})
	}

	member, err := findOrCreateMember(&auth)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"errors": []string{ServerInternalError},
		})
	}

	c.Locals("CurrentUser", member)

	return c.Next()
}

// findOrCreateMember materializes the directory record for the token's
// subject. On first sight the member gets a referral code, and the
// referral_id claim (a referrer's code passed at signup) links the chain.
func findOrCreateMember(auth *Auth) (*models.Member, error) {
	member := &models.Member{}

	result := config.DataBase.Where("uid = ?", auth.UID).First(member)
	if result.Error == nil {
		return member, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	member = &models.Member{
		UID:          auth.UID,
		Name:         auth.Username,
		Email:        auth.Email,
		Role:         auth.Role,
		State:        auth.State,
		ReferralCode: models.GenerateReferralCode(),
	}

	if len(auth.ReferralID) > 0 {
		directory := referral.NewGormStore(config.DataBase)
		referrer, err := directory.FindMemberByReferralCode(auth.ReferralID)
		if err == nil && referrer.UID != member.UID {
			member.ReferralUID = sql.NullString{String: referrer.UID, Valid: true}
		}
	}

	if err := config.DataBase.Create(member).Error; err != nil {
		return nil, err
	}

	return member, nil
}
