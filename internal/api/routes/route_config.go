package routes

import (
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/internal/api/handlers"
	"Aethera-Backend/internal/middleware"
	"Aethera-Backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	EmissionHandler handlers.EmissionHandler
	FactorHandler   handlers.FactorHandler
	CompanyHandler  handlers.CompanyHandler
	ReportHandler   handlers.ReportHandler
	DocumentHandler handlers.DocumentHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Emissions()
	c.Factors()
	c.Company()
	c.Reports()
	c.Documents()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Emissions() {
	emissions := c.App.Group("/api/v1/emissions", c.Middleware.AuthMiddleware(c.JWTService))

	emissions.Post("", c.EmissionHandler.AddEmission)
	emissions.Get("", c.EmissionHandler.GetEmissions)
	emissions.Put("/:id", c.EmissionHandler.UpdateEmission)
	emissions.Delete("/:id", c.EmissionHandler.DeleteEmission)
	emissions.Post("/import", c.EmissionHandler.ImportCSV)
}

func (c *Config) Factors() {
	factors := c.App.Group("/api/v1/factors", c.Middleware.AuthMiddleware(c.JWTService))

	factors.Get("", c.FactorHandler.GetFactors)
	factors.Post("", c.FactorHandler.UpsertFactor)
	factors.Delete("/:id", c.FactorHandler.DeleteFactor)
}

func (c *Config) Company() {
	company := c.App.Group("/api/v1/company", c.Middleware.AuthMiddleware(c.JWTService))

	company.Get("", c.CompanyHandler.GetCompanyInfo)
	company.Put("", c.CompanyHandler.SaveCompanyInfo)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))

	reports.Get("", c.ReportHandler.GenerateReport)
	reports.Get("/summary", c.ReportHandler.GetSummary)
}

func (c *Config) Documents() {
	documents := c.App.Group("/api/v1/documents", c.Middleware.AuthMiddleware(c.JWTService))

	documents.Post("", c.DocumentHandler.UploadDocument)
	documents.Get("/:id", c.DocumentHandler.GetScanResult)
	documents.Post("/save-extracted", c.DocumentHandler.SaveExtractedRecords)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
