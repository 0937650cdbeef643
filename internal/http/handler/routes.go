package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentapi/docs"
	"studentapi/internal/http/middleware"
	"studentapi/internal/service"
)

// Dependencies are the collaborators the routes are bound to. Scans may be nil, in
// which case the document scan routes are not registered.
type Dependencies struct {
	DB       Pinger
	Students service.StudentService
	Users    service.UserService
	Scans    service.DocumentScanService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", SwaggerUI())

	students := app.Group("/Student", middleware.RequireToken(deps.Users))
	students.Get("/GetAll", ListStudents(deps.Students))
	students.Get("/GetById", GetStudent(deps.Students))
	students.Post("/", CreateStudent(deps.Students))
	students.Put("/", UpdateStudent(deps.Students))
	students.Delete("/:studentId", DeleteStudent(deps.Students))

	if deps.Scans != nil {
		students.Put("/:studentId/Document", UploadScan(deps.Scans))
		students.Get("/:studentId/Document", GetScanLink(deps.Scans))
		students.Delete("/:studentId/Document", DeleteScan(deps.Scans))
	}

	users := app.Group("/User")
	users.Post("/Login", Login(deps.Users))
	users.Post("/Create", CreateUser(deps.Users))
	users.Get("/", GetUser(deps.Users))
	users.Patch("/ChangePassword", ChangePassword(deps.Users))
}

// SwaggerUI serves the generated API docs with the host and scheme of the current request.
func SwaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
