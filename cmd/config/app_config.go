package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"Aethera-Backend/internal/api/handlers"
	"Aethera-Backend/internal/api/routes"
	"Aethera-Backend/internal/middleware"
	"Aethera-Backend/internal/utils"
	"Aethera-Backend/internal/utils/storage"
	"Aethera-Backend/pkg/company"
	"Aethera-Backend/pkg/document"
	"Aethera-Backend/pkg/emission"
	"Aethera-Backend/pkg/factor"
	"Aethera-Backend/pkg/jwt"
	"Aethera-Backend/pkg/report"
	"Aethera-Backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	factorRepository := factor.NewFactorRepository(db)
	emissionRepository := emission.NewEmissionRepository(db)
	companyRepository := company.NewCompanyRepository(db)
	documentRepository := document.NewDocumentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	factorService := factor.NewFactorService(factorRepository, nil)
	emissionService := emission.NewEmissionService(emissionRepository, factorService)
	companyService := company.NewCompanyService(companyRepository)
	reportService := report.NewReportService(emissionRepository, companyRepository, userRepository, factorService, nil)
	documentService := document.NewDocumentService(documentRepository, emissionRepository, factorService, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	emissionHandler := handlers.NewEmissionHandler(emissionService, validator)
	factorHandler := handlers.NewFactorHandler(factorService, validator)
	companyHandler := handlers.NewCompanyHandler(companyService, validator)
	reportHandler := handlers.NewReportHandler(reportService)
	documentHandler := handlers.NewDocumentHandler(documentService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		EmissionHandler: emissionHandler,
		FactorHandler:   factorHandler,
		CompanyHandler:  companyHandler,
		ReportHandler:   reportHandler,
		DocumentHandler: documentHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
