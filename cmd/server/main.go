package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/careerconnect/backend/internal/admin"
	"github.com/careerconnect/backend/internal/config"
	"github.com/careerconnect/backend/internal/domain/fiber/handler"
	"github.com/careerconnect/backend/internal/middleware"
	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/service"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	skillRepo := repository.NewSkillRepository(db)
	if err := admin.SeedSkills(ctx, skillRepo); err != nil {
		log.Printf("skill seed failed: %v", err)
	}

	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Postings stay searchable without embeddings, so a missing API key
	// only disables the similarity endpoint.
	var embedder service.EmbeddingServiceInterface
	if config.LoadGeminiConfig().APIKey != "" {
		svc, err := service.NewEmbeddingService(ctx)
		if err != nil {
			log.Printf("embedding service unavailable: %v", err)
		} else {
			embedder = svc
		}
	}
	notifier := service.NewWebhookNotifier()

	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, embedder)
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo, notifier)
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)

	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(app)
	handler.NewProfileHandler(profileUC).RegisterRoutes(app)
	handler.NewCompanyHandler(companyUC, jobUC).RegisterRoutes(app)
	handler.NewSkillHandler(skillUC).RegisterRoutes(app)

	go jobUC.BackfillEmbeddings(ctx, 100)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	// TranslateError turns the unique-constraint violation on
	// (job_id, applicant_id) into gorm.ErrDuplicatedKey, which the
	// application repository depends on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("pgvector extension: ", err)
	}

	err = db.AutoMigrate(
		&model.Company{},
		&model.Job{},
		&model.Skill{},
		&model.JobSkill{},
		&model.Profile{},
		&model.UserSkill{},
		&model.Application{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
