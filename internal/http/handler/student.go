package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/service"
)

// ListStudents godoc
// @Summary List students
// @Tags Student
// @Produce json
// @Security TokenAuth
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Success 200 {array} model.Student
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student/GetAll [get]
func ListStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber, err := queryInt(c, "pageNumber", repository.DefaultPage.Number)
		if err != nil {
			return badRequest(c, err)
		}
		pageSize, err := queryInt(c, "pageSize", repository.DefaultPage.Size)
		if err != nil {
			return badRequest(c, err)
		}

		return respondList(c, svc.GetAll(c.UserContext(), pageNumber, pageSize))
	}
}

// GetStudent godoc
// @Summary Get a student by id
// @Tags Student
// @Produce json
// @Security TokenAuth
// @Param studentId query int true "Student id"
// @Success 200 {object} model.Student
// @Failure 400 {array} string
// @Failure 401
// @Failure 404
// @Failure 500 {array} string
// @Router /Student/GetById [get]
func GetStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := queryID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}

		return respondSingle(c, svc.GetByID(c.UserContext(), id))
	}
}

// CreateStudent godoc
// @Summary Create a student
// @Tags Student
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param student body model.StudentCreate true "Student"
// @Success 201 {object} model.Student
// @Header 201 {string} Location "/Student/GetById?studentId={id}"
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student [post]
func CreateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.StudentCreate
		if err := c.BodyParser(&in); err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgInvalidBody)
		}

		res := svc.Create(c.UserContext(), in)
		location := ""
		if res.Single != nil {
			location = "/Student/GetById?studentId=" + strconv.FormatInt(res.Single.ID, 10)
		}
		return respondCreated(c, res, location)
	}
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Document type 0 and an empty birth date keep the stored values.
// @Tags Student
// @Accept json
// @Security TokenAuth
// @Param studentId query int true "Student id"
// @Param student body model.StudentUpdate true "Student"
// @Success 204
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student [put]
func UpdateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := queryID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}
		var in model.StudentUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgInvalidBody)
		}

		return respondNoContent(c, svc.Update(c.UserContext(), id, in))
	}
}

// DeleteStudent godoc
// @Summary Delete a disabled student
// @Tags Student
// @Security TokenAuth
// @Param studentId path int true "Student id"
// @Success 204
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student/{studentId} [delete]
func DeleteStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}

		return respondNoContent(c, svc.Delete(c.UserContext(), id))
	}
}
