package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"realloc-backend/config"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// GetAccountID extrai a conta autenticada do token, quando presente.
func GetAccountID(ctx *fiber.Ctx) *string {
	user, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	id, ok := claims["account_id"].(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
