// Package validation holds the request rules and the Result envelope every service operation returns.
package validation

import "net/http"

// Result is the uniform outcome of a service operation.
// Any error message implies a non-200 Code; callers must ignore Single and List when Errors is non-empty.
type Result[T any] struct {
	Code   int      `json:"code"`
	Errors []string `json:"errors"`
	Single *T       `json:"single,omitempty"`
	List   []T      `json:"list,omitempty"`
}

// NewResult returns an empty successful result.
func NewResult[T any]() *Result[T] {
	return &Result[T]{Code: http.StatusOK, Errors: []string{}}
}

// HasErrors reports whether any error message was recorded.
func (r *Result[T]) HasErrors() bool {
	return len(r.Errors) > 0
}

// Fail records msg and sets the status code.
func (r *Result[T]) Fail(code int, msg string) *Result[T] {
	r.Code = code
	r.Errors = append(r.Errors, msg)
	return r
}

// Merge copies the report into the result. It returns true when the report carried errors.
func (r *Result[T]) Merge(rep Report) bool {
	if rep.OK() {
		return false
	}
	r.Code = rep.Code
	r.Errors = append(r.Errors, rep.Errors...)
	return true
}

// SetSingle stores v as the single item.
func (r *Result[T]) SetSingle(v T) *Result[T] {
	r.Single = &v
	return r
}

// Carry returns a result of another item type holding the code and errors of src.
func Carry[U, T any](src *Result[T]) *Result[U] {
	dst := NewResult[U]()
	dst.Code = src.Code
	dst.Errors = append(dst.Errors, src.Errors...)
	return dst
}

// Report is the status-tagged list of rule violations produced by a validation rule.
type Report struct {
	Code   int
	Errors []string
}

func newReport() Report {
	return Report{Code: http.StatusOK, Errors: []string{}}
}

// OK reports whether no rule was violated.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

func (r *Report) add(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Code = http.StatusBadRequest
}
