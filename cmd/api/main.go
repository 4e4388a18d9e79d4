package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arclight-digital/arclight-backend/internal/infra/database"
	"github.com/arclight-digital/arclight-backend/internal/infra/http/handlers"
	"github.com/arclight-digital/arclight-backend/internal/infra/http/middleware"
	"github.com/arclight-digital/arclight-backend/internal/infra/integration/workflow"
	"github.com/arclight-digital/arclight-backend/internal/infra/mail"
	"github.com/arclight-digital/arclight-backend/internal/infra/queue"
	"github.com/arclight-digital/arclight-backend/internal/infra/storage"
	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	consultationRepo := database.NewConsultationRepository(db)
	applicationRepo := database.NewApplicationRepository(db)
	blogRepo := database.NewBlogRepository(db)
	userRepo := database.NewUserRepository(db)
	inviteRepo := database.NewInviteRepository(db)
	settingsRepo := database.NewSettingsRepository(db)
	aboutRepo := database.NewAboutRepository(db)

	// 2. Integrations and adapters
	relayClient := workflow.NewClient()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	var resumeStore usecase.ResumeStorageInterface
	if bucket := os.Getenv("RESUME_BUCKET"); bucket != "" {
		store, err := storage.NewResumeStore(context.Background(), bucket,
			os.Getenv("RESUME_KEY_PREFIX"), os.Getenv("AWS_REGION"))
		if err != nil {
			log.Fatal(err)
		}
		resumeStore = store
	}

	// 3. Worker (consumes the queue and sends acknowledgement mail)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, producer)
	submitConsultationUC := usecase.NewSubmitConsultationUseCase(consultationRepo, producer)
	submitApplicationUC := usecase.NewSubmitApplicationUseCase(
		applicationRepo, settingsRepo, resumeStore, relayClient, producer,
	)
	relayApplicationUC := usecase.NewRelayApplicationUseCase(settingsRepo, relayClient)
	statusUC := usecase.NewUpdateStatusUseCase(leadRepo, consultationRepo, applicationRepo)
	scheduleUC := usecase.NewScheduleInterviewUseCase(applicationRepo, producer)
	signupUC := usecase.NewSignupUseCase(userRepo, inviteRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	consultationHandler := handlers.NewConsultationHandler(submitConsultationUC)
	applicationHandler := handlers.NewApplicationHandler(submitApplicationUC, relayApplicationUC)
	adminHandler := handlers.NewAdminHandler(
		leadRepo, consultationRepo, applicationRepo, settingsRepo, statusUC, scheduleUC,
	)
	blogHandler := handlers.NewBlogHandler(blogRepo)
	aboutHandler := handlers.NewAboutHandler(aboutRepo)
	profileHandler := handlers.NewProfileHandler(signupUC, userRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	allowedOrigins := []string{"*"}
	if origin := os.Getenv("SITE_ORIGIN"); origin != "" {
		allowedOrigins = []string{origin}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token"},
	}))

	r.Post("/leads", leadHandler.HandleSubmit)
	r.Post("/consultations", consultationHandler.HandleSubmit)
	r.Post("/careers/apply", applicationHandler.HandleApply)
	r.Post("/careers/apply-link", applicationHandler.HandleApplyLink)
	r.Post("/careers/relay", applicationHandler.HandleRelayProxy)

	r.Get("/blog", blogHandler.HandleListPublished)
	r.Get("/blog/{slug}", blogHandler.HandleGetBySlug)
	r.Get("/about", aboutHandler.HandleGet)

	r.Post("/signup", profileHandler.HandleSignup)
	r.Get("/profiles/{uid}", profileHandler.HandleGetProfile)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(os.Getenv("ADMIN_TOKEN")))

		r.Get("/leads", adminHandler.HandleListLeads)
		r.Put("/leads/{id}/status", adminHandler.HandleLeadStatus)
		r.Delete("/leads/{id}", adminHandler.HandleDeleteLead)

		r.Get("/consultations", adminHandler.HandleListConsultations)
		r.Put("/consultations/{id}/status", adminHandler.HandleConsultationStatus)
		r.Delete("/consultations/{id}", adminHandler.HandleDeleteConsultation)

		r.Get("/applications", adminHandler.HandleListApplications)
		r.Put("/applications/{id}/status", adminHandler.HandleApplicationStatus)
		r.Put("/applications/{id}/schedule", adminHandler.HandleSchedule)
		r.Delete("/applications/{id}", adminHandler.HandleDeleteApplication)
		r.Get("/interviews/upcoming", adminHandler.HandleUpcomingInterviews)

		r.Get("/blog", blogHandler.HandleListAll)
		r.Post("/blog", blogHandler.HandleCreate)
		r.Put("/blog/{id}", blogHandler.HandleUpdate)
		r.Delete("/blog/{id}", blogHandler.HandleDelete)

		r.Get("/settings", adminHandler.HandleGetSettings)
		r.Put("/settings", adminHandler.HandlePutSettings)

		r.Put("/about", aboutHandler.HandlePut)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Arclight backend listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
