package auth

import (
	"errors"
	"strings"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler checks the credentials and issues a bearer token. An unknown
// email is a 404 and a wrong password a 401, which the clients tell apart.
func LoginHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		user, err := st.GetUserByEmail(body.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Incorrect password")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"token": token,
			"role":  user.Role,
		})
	}
}
