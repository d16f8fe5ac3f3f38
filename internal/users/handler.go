package users

import (
	"errors"
	"strings"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Password  string `json:"password"`
	BranchIDs []uint `json:"branchIds"` // only honored when branch linking at creation is enabled
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"` // empty means keep the current hash
}

func CreateHandler(st *store.Store, branchLinkOnCreate bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:     body.Name,
			Email:    body.Email,
			Role:     body.Role,
			Password: string(hash),
		}

		var branchIDs []uint
		if branchLinkOnCreate {
			branchIDs = body.BranchIDs
		}

		if err := st.CreateUser(&user, branchIDs); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return fiber.NewError(fiber.StatusBadRequest, "Email already in use")
			}
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := st.ListUsers()
		if err != nil {
			return err
		}
		return c.JSON(users)
	}
}

func GetHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		user, err := st.GetUser(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return err
		}
		return c.JSON(user)
	}
}

func UpdateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		user, err := st.GetUser(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return err
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		user.Name = body.Name
		user.Email = strings.TrimSpace(strings.ToLower(body.Email))
		user.Role = body.Role

		// Rehash only when a new password was supplied.
		if body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.Password = string(hash)
		}

		if err := st.UpdateUser(user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return fiber.NewError(fiber.StatusBadRequest, "Email already in use")
			}
			return err
		}
		return c.JSON(user)
	}
}

func DeleteHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		if err := st.DeleteUser(uint(id)); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func AddBranchHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("userId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}
		branchID, err := c.ParamsInt("branchId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid branch id")
		}

		user, err := st.AddBranch(uint(userID), uint(branchID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User or branch not found")
			}
			return err
		}
		return c.JSON(user)
	}
}

func RemoveBranchHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("userId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}
		branchID, err := c.ParamsInt("branchId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid branch id")
		}

		user, err := st.RemoveBranch(uint(userID), uint(branchID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return err
		}
		return c.JSON(user)
	}
}
