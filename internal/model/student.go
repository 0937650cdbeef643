package model

// DocumentType classifies the identity document a student is registered with.
type DocumentType int

const (
	DocumentTypeUnset      DocumentType = 0
	DocumentTypeIDCard     DocumentType = 1
	DocumentTypeNationalID DocumentType = 2
	DocumentTypeForeignID  DocumentType = 3
	DocumentTypePassport   DocumentType = 4
)

func (t DocumentType) String() string {
	switch t {
	case DocumentTypeIDCard:
		return "IdCard"
	case DocumentTypeNationalID:
		return "NationalId"
	case DocumentTypeForeignID:
		return "ForeignId"
	case DocumentTypePassport:
		return "Passport"
	default:
		return "Unset"
	}
}

// AllowsLetters reports whether document numbers of this type may contain non-digits.
func (t DocumentType) AllowsLetters() bool {
	return t == DocumentTypeForeignID || t == DocumentTypePassport
}

// Student is a persisted student record.
// This is a pure domain model with no database-specific dependencies or tags.
type Student struct {
	ID             int64        `json:"studentId"`
	DocumentTypeID DocumentType `json:"documentTypeId"`
	DocumentNumber string       `json:"documentNumber"`
	Names          string       `json:"names"`
	LastNames      string       `json:"lastNames"`
	BirthDate      Date         `json:"birthDate"`
	Enabled        bool         `json:"enabled"`
}

// StudentCreate is the request body for creating a student.
type StudentCreate struct {
	DocumentTypeID DocumentType `json:"documentTypeId"`
	DocumentNumber string       `json:"documentNumber"`
	Names          string       `json:"names"`
	LastNames      string       `json:"lastNames"`
	BirthDate      Date         `json:"birthDate"`
}

// ToStudent maps the request to a new, enabled student.
func (s StudentCreate) ToStudent() Student {
	return Student{
		DocumentTypeID: s.DocumentTypeID,
		DocumentNumber: s.DocumentNumber,
		Names:          s.Names,
		LastNames:      s.LastNames,
		BirthDate:      s.BirthDate,
		Enabled:        true,
	}
}

// StudentUpdate is the request body for updating a student. A zero DocumentTypeID keeps the stored type.
type StudentUpdate struct {
	DocumentTypeID DocumentType `json:"documentTypeId"`
	DocumentNumber string       `json:"documentNumber"`
	Names          string       `json:"names"`
	LastNames      string       `json:"lastNames"`
	BirthDate      Date         `json:"birthDate"`
	Enabled        bool         `json:"enabled"`
}

// ToStudent maps the request onto the student with the given id.
func (s StudentUpdate) ToStudent(id int64) Student {
	return Student{
		ID:             id,
		DocumentTypeID: s.DocumentTypeID,
		DocumentNumber: s.DocumentNumber,
		Names:          s.Names,
		LastNames:      s.LastNames,
		BirthDate:      s.BirthDate,
		Enabled:        s.Enabled,
	}
}
