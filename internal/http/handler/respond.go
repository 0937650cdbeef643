package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"studentapi/internal/validation"
)

const (
	MsgInvalidBody  = "Request body is not valid JSON"
	MsgInvalidParam = "Parameter '%s' must be an integer"
	MsgFileRequired = "A document scan file is required"
)

// writeFailure maps a failed result: 400 stays 400, every other code becomes 500.
func writeFailure[T any](c *fiber.Ctx, res *validation.Result[T]) error {
	status := fiber.StatusInternalServerError
	if res.Code == fiber.StatusBadRequest {
		status = fiber.StatusBadRequest
	}
	return writeErrors(c, status, res.Errors...)
}

func respondList[T any](c *fiber.Ctx, res *validation.Result[T]) error {
	if res.HasErrors() {
		return writeFailure(c, res)
	}
	items := res.List
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// respondSingle answers 404 with an empty body when the result holds neither errors nor an item.
func respondSingle[T any](c *fiber.Ctx, res *validation.Result[T]) error {
	if res.HasErrors() {
		return writeFailure(c, res)
	}
	if res.Single == nil {
		c.Status(fiber.StatusNotFound)
		return nil
	}
	return c.Status(fiber.StatusOK).JSON(res.Single)
}

func respondCreated[T any](c *fiber.Ctx, res *validation.Result[T], location string) error {
	if res.HasErrors() {
		return writeFailure(c, res)
	}
	if location != "" {
		c.Location(location)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Single)
}

func respondNoContent[T any](c *fiber.Ctx, res *validation.Result[T]) error {
	if res.HasErrors() {
		return writeFailure(c, res)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondOK[T any](c *fiber.Ctx, res *validation.Result[T]) error {
	if res.HasErrors() {
		return writeFailure(c, res)
	}
	return c.SendStatus(fiber.StatusOK)
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(MsgInvalidParam, key)
	}
	return v, nil
}

// queryID parses an optional id query parameter. A missing id is 0 and left to the service rules.
func queryID(c *fiber.Ctx, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(MsgInvalidParam, key)
	}
	return v, nil
}

func paramID(c *fiber.Ctx, key string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf(MsgInvalidParam, key)
	}
	return v, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return writeErrors(c, fiber.StatusBadRequest, err.Error())
}
