// Package service runs the validate, persist and shape pipeline for every use case.
// Operations never return Go errors: failures are reported through validation.Result.
package service

import (
	"net/http"

	"go.uber.org/zap"

	"studentapi/internal/validation"
)

const (
	MsgStudentNotExist    = "Student does not exist"
	MsgUserNotFound       = "User not Found"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserNameTaken      = "UserName is already taken"
	MsgScanEmpty          = "Document scan cannot be empty"
	MsgScanTooLarge       = "Document scan cannot be larger than %d bytes"
)

// failUnexpected records a persistence or storage failure as a 500 carrying the raw message.
func failUnexpected[T any](res *validation.Result[T], log *zap.Logger, op string, err error) *validation.Result[T] {
	log.Error(op+" failed", zap.Error(err))
	return res.Fail(http.StatusInternalServerError, err.Error())
}
