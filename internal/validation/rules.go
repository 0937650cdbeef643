package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"studentapi/internal/model"
)

const (
	MsgInvalidDocumentType   = "Please set a valid Document Type"
	MsgDocumentNumberLetters = "Document number cannot have letters if Document type is not ForeignId or Passport"
	MsgDocumentNumberEmpty   = "Document Number cannot be Empty"
	MsgDocumentNumberLength  = "Document Number length should be between 5 and 30"
	MsgNamesEmpty            = "Names cannot be Empty"
	MsgNamesLength           = "Names length should be between 2 and 100"
	MsgLastNamesEmpty        = "Last names cannot be Empty"
	MsgLastNamesLength       = "Last names length should be between 2 and 100"
	MsgEnabledStudentDelete  = "Enabled students cannot be deleted"
	MsgStudentIDTooLow       = "Student Id cannot be less than '1' One"
	MsgUserNameEmpty         = "UserName cannot be empty"
	MsgPasswordEmpty         = "Password cannot be empty"
	MsgUserIDNotPositive     = "UserId should be greater than Zero"
)

const (
	tagDocumentTypeCreate   = "min=1,max=4"
	tagDocumentTypeUpdate   = "min=0,max=4"
	tagDocumentNumberDigits = "number"
	tagDocumentNumberLength = "min=5,max=30"
	tagPersonNameLength     = "min=2,max=100"
	tagPositiveID           = "gte=1"
)

var validate = validator.New()

func violates(field any, tag string) bool {
	return validate.Var(field, tag) != nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// StudentCreate checks a create request.
func StudentCreate(in model.StudentCreate) Report {
	rep := newReport()
	if violates(int(in.DocumentTypeID), tagDocumentTypeCreate) {
		rep.add(MsgInvalidDocumentType)
	}
	studentFields(&rep, in.DocumentTypeID, in.DocumentNumber, in.Names, in.LastNames)
	return rep
}

// StudentUpdate checks an update request. Document type 0 means keep the stored value.
func StudentUpdate(in model.StudentUpdate) Report {
	rep := newReport()
	if violates(int(in.DocumentTypeID), tagDocumentTypeUpdate) {
		rep.add(MsgInvalidDocumentType)
	}
	studentFields(&rep, in.DocumentTypeID, in.DocumentNumber, in.Names, in.LastNames)
	return rep
}

func studentFields(rep *Report, docType model.DocumentType, number, names, lastNames string) {
	if !docType.AllowsLetters() && !blank(number) && violates(number, tagDocumentNumberDigits) {
		rep.add(MsgDocumentNumberLetters)
	}

	if blank(number) {
		rep.add(MsgDocumentNumberEmpty)
	} else if violates(number, tagDocumentNumberLength) {
		rep.add(MsgDocumentNumberLength)
	}

	if blank(names) {
		rep.add(MsgNamesEmpty)
	} else if violates(names, tagPersonNameLength) {
		rep.add(MsgNamesLength)
	}

	if blank(lastNames) {
		rep.add(MsgLastNamesEmpty)
	} else if violates(lastNames, tagPersonNameLength) {
		rep.add(MsgLastNamesLength)
	}
}

// StudentDelete rejects deleting a student that is still enabled.
func StudentDelete(current model.Student) Report {
	rep := newReport()
	if current.Enabled {
		rep.add(MsgEnabledStudentDelete)
	}
	return rep
}

// StudentID rejects ids below 1.
func StudentID(id int64) Report {
	rep := newReport()
	if violates(id, tagPositiveID) {
		rep.add(MsgStudentIDTooLow)
	}
	return rep
}

// UserName requires a non-blank user name.
func UserName(name string) Report {
	rep := newReport()
	if blank(name) {
		rep.add(MsgUserNameEmpty)
	}
	return rep
}

// UserCreate requires a user name and a password.
func UserCreate(in model.UserCreate) Report {
	rep := UserName(in.UserName)
	if blank(in.Password) {
		rep.add(MsgPasswordEmpty)
	}
	return rep
}

// UserID rejects ids below 1.
func UserID(id int64) Report {
	rep := newReport()
	if violates(id, tagPositiveID) {
		rep.add(MsgUserIDNotPositive)
	}
	return rep
}

// UserChangePassword requires a valid user id and a new password.
func UserChangePassword(in model.UserChangePassword) Report {
	rep := UserID(in.UserID)
	if blank(in.NewPassword) {
		rep.add(MsgPasswordEmpty)
	}
	return rep
}
