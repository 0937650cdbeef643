package handler

import (
	"github.com/gofiber/fiber/v2"

	"studentapi/internal/model"
	"studentapi/internal/service"
)

// Login godoc
// @Summary Exchange credentials for a token
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body model.UserLogin true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {array} string
// @Failure 500 {array} string
// @Router /User/Login [post]
func Login(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserLogin
		if err := c.BodyParser(&in); err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgInvalidBody)
		}

		res := svc.Login(c.UserContext(), in)
		if res.HasErrors() {
			return writeFailure(c, res)
		}
		if res.Single == nil {
			return writeErrors(c, fiber.StatusInternalServerError, service.MsgInvalidCredentials)
		}
		return c.Status(fiber.StatusOK).JSON(model.LoginResponse{Token: *res.Single})
	}
}

// CreateUser godoc
// @Summary Register a user
// @Tags User
// @Accept json
// @Param user body model.UserCreate true "User"
// @Success 200
// @Failure 400 {array} string
// @Failure 500 {array} string
// @Router /User/Create [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserCreate
		if err := c.BodyParser(&in); err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgInvalidBody)
		}

		return respondOK(c, svc.Create(c.UserContext(), in))
	}
}

// GetUser godoc
// @Summary Get a user profile
// @Tags User
// @Produce json
// @Param userId query int true "User id"
// @Success 200 {object} model.UserProfile
// @Failure 400 {array} string
// @Failure 404
// @Failure 500 {array} string
// @Router /User [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := queryID(c, "userId")
		if err != nil {
			return badRequest(c, err)
		}

		return respondSingle(c, svc.GetByID(c.UserContext(), id))
	}
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags User
// @Accept json
// @Param request body model.UserChangePassword true "New password"
// @Success 204
// @Failure 400 {array} string
// @Failure 500 {array} string
// @Router /User/ChangePassword [patch]
func ChangePassword(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserChangePassword
		if err := c.BodyParser(&in); err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgInvalidBody)
		}

		return respondNoContent(c, svc.ChangePassword(c.UserContext(), in))
	}
}
