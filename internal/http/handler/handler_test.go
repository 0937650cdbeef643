package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studentapi/internal/model"
	"studentapi/internal/service"
	serviceMocks "studentapi/internal/service/mocks"
	"studentapi/internal/validation"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeErrors(t *testing.T, resp *http.Response) []string {
	t.Helper()
	var errs []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errs))
	return errs
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func studentResult(s model.Student) *validation.Result[model.Student] {
	return validation.NewResult[model.Student]().SetSingle(s)
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("no database", func(t *testing.T) {
		memApp := fiber.New()
		memApp.Get("/health", HealthCheck(nil))

		resp, _ := memApp.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListStudents(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Get("/Student/GetAll", ListStudents(mockSvc))

	t.Run("defaults", func(t *testing.T) {
		res := validation.NewResult[model.Student]()
		res.List = []model.Student{{ID: 1, Names: "Ada"}, {ID: 2, Names: "Grace"}}
		mockSvc.On("GetAll", mock.Anything, 1, 50).Return(res).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/GetAll", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.Student
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		assert.Len(t, items, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc.On("GetAll", mock.Anything, 3, 10).Return(validation.NewResult[model.Student]()).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/GetAll?pageNumber=3&pageSize=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", readBody(t, resp))
	})

	t.Run("malformed page size", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/GetAll?pageSize=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"Parameter 'pageSize' must be an integer"}, decodeErrors(t, resp))
	})

	t.Run("persistence failure", func(t *testing.T) {
		failed := validation.NewResult[model.Student]().Fail(http.StatusInternalServerError, "connection refused")
		mockSvc.On("GetAll", mock.Anything, 1, 50).Return(failed).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/GetAll", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, []string{"connection refused"}, decodeErrors(t, resp))
	})
}

func TestGetStudent(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMocks func(m *serviceMocks.MockStudentService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "found",
			target: "/Student/GetById?studentId=7",
			setupMocks: func(m *serviceMocks.MockStudentService) {
				m.On("GetByID", mock.Anything, int64(7)).Return(studentResult(model.Student{ID: 7, Names: "Ada"}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found has an empty body",
			target: "/Student/GetById?studentId=8",
			setupMocks: func(m *serviceMocks.MockStudentService) {
				res := validation.NewResult[model.Student]()
				res.Code = http.StatusNotFound
				m.On("GetByID", mock.Anything, int64(8)).Return(res)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "",
		},
		{
			name:   "validation failure",
			target: "/Student/GetById?studentId=0",
			setupMocks: func(m *serviceMocks.MockStudentService) {
				res := validation.NewResult[model.Student]()
				res.Merge(validation.StudentID(0))
				m.On("GetByID", mock.Anything, int64(0)).Return(res)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `["Student Id cannot be less than '1' One"]`,
		},
		{
			name:       "malformed id",
			target:     "/Student/GetById?studentId=x",
			setupMocks: func(m *serviceMocks.MockStudentService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `["Parameter 'studentId' must be an integer"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockStudentService)
			tt.setupMocks(mockSvc)

			app := fiber.New()
			app.Get("/Student/GetById", GetStudent(mockSvc))

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := readBody(t, resp)
			if tt.wantStatus == http.StatusOK {
				var got model.Student
				require.NoError(t, json.Unmarshal([]byte(body), &got))
				assert.Equal(t, int64(7), got.ID)
			} else {
				assert.Equal(t, tt.wantBody, body)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestCreateStudent(t *testing.T) {
	body := `{"documentTypeId":1,"documentNumber":"1234567","names":"Ada","lastNames":"Lovelace","birthDate":"1990-01-01"}`
	want := model.StudentCreate{
		DocumentTypeID: model.DocumentTypeIDCard,
		DocumentNumber: "1234567",
		Names:          "Ada",
		LastNames:      "Lovelace",
		BirthDate:      model.NewDate(1990, time.January, 1),
	}

	t.Run("created", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudentService)
		created := want.ToStudent()
		created.ID = 42
		mockSvc.On("Create", mock.Anything, want).Return(studentResult(created)).Once()

		app := fiber.New()
		app.Post("/Student", CreateStudent(mockSvc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/Student", body))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/Student/GetById?studentId=42", resp.Header.Get(fiber.HeaderLocation))
		var got model.Student
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, int64(42), got.ID)
		assert.True(t, got.Enabled)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation errors", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudentService)
		res := validation.NewResult[model.Student]()
		res.Merge(validation.StudentCreate(model.StudentCreate{DocumentTypeID: 1, DocumentNumber: "1", Names: "Ada", LastNames: "Lovelace"}))
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(res).Once()

		app := fiber.New()
		app.Post("/Student", CreateStudent(mockSvc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/Student", body))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderLocation))
		assert.Equal(t, []string{validation.MsgDocumentNumberLength}, decodeErrors(t, resp))
	})

	t.Run("malformed body", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockStudentService)
		app := fiber.New()
		app.Post("/Student", CreateStudent(mockSvc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/Student", `{"names":`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{MsgInvalidBody}, decodeErrors(t, resp))
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateStudent(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Put("/Student", UpdateStudent(mockSvc))

	body := `{"documentTypeId":0,"documentNumber":"1234567","names":"Ada","lastNames":"Lovelace","enabled":false}`

	t.Run("updated", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(in model.StudentUpdate) bool {
			return in.DocumentTypeID == model.DocumentTypeUnset && !in.Enabled && in.BirthDate.IsZero()
		})).Return(validation.NewResult[bool]().SetSingle(true)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/Student?studentId=5", body))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
	})

	t.Run("unexpected failure", func(t *testing.T) {
		failed := validation.NewResult[bool]().Fail(http.StatusInternalServerError, "deadlock detected")
		mockSvc.On("Update", mock.Anything, int64(6), mock.Anything).Return(failed).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/Student?studentId=6", body))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, []string{"deadlock detected"}, decodeErrors(t, resp))
	})

	mockSvc.AssertExpectations(t)
}

func TestDeleteStudent(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Delete("/Student/:studentId", DeleteStudent(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(3)).Return(validation.NewResult[int64]().SetSingle(1)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/Student/3", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("enabled student", func(t *testing.T) {
		res := validation.NewResult[int64]()
		res.Merge(validation.StudentDelete(model.Student{ID: 4, Enabled: true}))
		mockSvc.On("Delete", mock.Anything, int64(4)).Return(res).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/Student/4", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{validation.MsgEnabledStudentDelete}, decodeErrors(t, resp))
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/Student/abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestUserHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/User/Login", Login(mockSvc))
	app.Post("/User/Create", CreateUser(mockSvc))
	app.Get("/User", GetUser(mockSvc))
	app.Patch("/User/ChangePassword", ChangePassword(mockSvc))

	t.Run("login returns the token", func(t *testing.T) {
		login := model.UserLogin{UserName: "ada", Password: "secret"}
		mockSvc.On("Login", mock.Anything, login).Return(validation.NewResult[string]().SetSingle("c0de")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/User/Login", `{"userName":"ada","password":"secret"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"token":"c0de"}`, readBody(t, resp))
	})

	t.Run("login with wrong password", func(t *testing.T) {
		failed := validation.NewResult[string]().Fail(http.StatusUnauthorized, service.MsgInvalidCredentials)
		mockSvc.On("Login", mock.Anything, model.UserLogin{UserName: "ada", Password: "nope"}).Return(failed).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/User/Login", `{"userName":"ada","password":"nope"}`))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, []string{service.MsgInvalidCredentials}, decodeErrors(t, resp))
	})

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, model.UserCreate{UserName: "grace", Password: "pw"}).
			Return(validation.NewResult[bool]().SetSingle(true)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/User/Create", `{"userName":"grace","password":"pw"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get profile", func(t *testing.T) {
		profile := validation.NewResult[model.UserProfile]().SetSingle(model.UserProfile{ID: 2, UserName: "grace"})
		mockSvc.On("GetByID", mock.Anything, int64(2)).Return(profile).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/User?userId=2", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"userId":2,"userName":"grace"}`, readBody(t, resp))
	})

	t.Run("unknown user", func(t *testing.T) {
		res := validation.NewResult[model.UserProfile]()
		res.Code = http.StatusNotFound
		mockSvc.On("GetByID", mock.Anything, int64(99)).Return(res).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/User?userId=99", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("change password", func(t *testing.T) {
		in := model.UserChangePassword{UserID: 2, NewPassword: "new"}
		mockSvc.On("ChangePassword", mock.Anything, in).Return(validation.NewResult[bool]().SetSingle(true)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/User/ChangePassword", `{"userId":2,"newPassword":"new"}`))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestScanHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentScanService)
	app := fiber.New()
	app.Put("/Student/:studentId/Document", UploadScan(mockSvc))
	app.Get("/Student/:studentId/Document", GetScanLink(mockSvc))
	app.Delete("/Student/:studentId/Document", DeleteScan(mockSvc))

	t.Run("upload", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "id-card.png")
		part.Write([]byte("scan bytes"))
		writer.Close()

		scan := model.DocumentScan{StudentID: 9, StoragePath: "students/9/document", Filename: "id-card.png", Size: 10}
		mockSvc.On("Upload", mock.Anything, int64(9), mock.Anything, "id-card.png", mock.Anything, int64(10)).
			Return(validation.NewResult[model.DocumentScan]().SetSingle(scan)).Once()

		req := httptest.NewRequest(http.MethodPut, "/Student/9/Document", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/Student/9/Document", resp.Header.Get(fiber.HeaderLocation))
		var got model.DocumentScan
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "students/9/document", got.StoragePath)
	})

	t.Run("upload without file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPut, "/Student/9/Document", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{MsgFileRequired}, decodeErrors(t, resp))
	})

	t.Run("link", func(t *testing.T) {
		link := model.DocumentScanLink{URL: "http://minio.local/students/9/document?X-Amz-Signature=abc"}
		mockSvc.On("Link", mock.Anything, int64(9)).Return(validation.NewResult[model.DocumentScanLink]().SetSingle(link)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/9/Document", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.DocumentScanLink
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, link.URL, got.URL)
	})

	t.Run("link without scan", func(t *testing.T) {
		res := validation.NewResult[model.DocumentScanLink]()
		res.Code = http.StatusNotFound
		mockSvc.On("Link", mock.Anything, int64(10)).Return(res).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/10/Document", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("remove", func(t *testing.T) {
		mockSvc.On("Remove", mock.Anything, int64(9)).Return(validation.NewResult[bool]().SetSingle(true)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/Student/9/Document", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	students := new(serviceMocks.MockStudentService)
	users := new(serviceMocks.MockUserService)
	users.On("ValidateToken", mock.Anything, "valid").Return(true)
	users.On("ValidateToken", mock.Anything, mock.Anything).Return(false)

	RegisterRoutes(app, Dependencies{Students: students, Users: users})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("student routes require a token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Student/GetAll", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
		students.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("scan routes absent without storage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/Student/1/Document", nil)
		req.Header.Set("token", "valid")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("user routes are public", func(t *testing.T) {
		res := validation.NewResult[model.UserProfile]().SetSingle(model.UserProfile{ID: 1, UserName: "ada"})
		users.On("GetByID", mock.Anything, int64(1)).Return(res).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/User?userId=1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
