package handler

import (
	"github.com/gofiber/fiber/v2"

	"studentapi/internal/service"
)

// UploadScan godoc
// @Summary Upload a student's document scan
// @Description Replaces any previous scan of the student.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Security TokenAuth
// @Param studentId path int true "Student id"
// @Param file formData file true "Scan"
// @Success 201 {object} model.DocumentScan
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student/{studentId}/Document [put]
func UploadScan(svc service.DocumentScanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgFileRequired)
		}
		f, err := fh.Open()
		if err != nil {
			return writeErrors(c, fiber.StatusBadRequest, MsgFileRequired)
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res := svc.Upload(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		return respondCreated(c, res, "/Student/"+c.Params("studentId")+"/Document")
	}
}

// GetScanLink godoc
// @Summary Get a temporary download link for a student's document scan
// @Tags Document
// @Produce json
// @Security TokenAuth
// @Param studentId path int true "Student id"
// @Success 200 {object} model.DocumentScanLink
// @Failure 400 {array} string
// @Failure 401
// @Failure 404
// @Failure 500 {array} string
// @Router /Student/{studentId}/Document [get]
func GetScanLink(svc service.DocumentScanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}

		return respondSingle(c, svc.Link(c.UserContext(), id))
	}
}

// DeleteScan godoc
// @Summary Delete a student's document scan
// @Tags Document
// @Security TokenAuth
// @Param studentId path int true "Student id"
// @Success 204
// @Failure 400 {array} string
// @Failure 401
// @Failure 500 {array} string
// @Router /Student/{studentId}/Document [delete]
func DeleteScan(svc service.DocumentScanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "studentId")
		if err != nil {
			return badRequest(c, err)
		}

		return respondNoContent(c, svc.Remove(c.UserContext(), id))
	}
}
