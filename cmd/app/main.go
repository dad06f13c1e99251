package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"kud-club-backend/internal/config"
	"kud-club-backend/internal/health"
	"kud-club-backend/internal/jobs"
	"kud-club-backend/internal/logger"
	"kud-club-backend/internal/repository/postgres"
	"kud-club-backend/internal/scheduler"
	"kud-club-backend/internal/service"
	"kud-club-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	dbURL := flag.String("db-url", "", "PostgreSQL connection URL (overrides config)")
	dbUser := flag.String("db-user", "", "Database user (overrides config)")
	dbPassword := flag.String("db-password", "", "Database password (overrides config)")
	flag.Parse()

	// Load .env if present; real environment wins over the file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath, config.Overrides{
		DatabaseURL:      *dbURL,
		DatabaseUser:     *dbUser,
		DatabasePassword: *dbPassword,
	})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting KUD Karadjordje Bern club backend...", "log_level", cfg.Log.Level)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database. A failed connection is not fatal: the
	// repositories degrade to empty results and the health monitor
	// reports the outage until the database comes back.
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database handle", "error", err)
		log.Fatalf("Failed to open database handle: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Warn("Database unreachable at startup", "error", err)
	} else {
		logger.Info("Database connection established")
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Storage
	docRoot := cfg.Storage.DocumentRoot
	if docRoot == "" {
		docRoot, err = storage.DefaultRoot()
		if err != nil {
			logger.Error("Failed to resolve document root", "error", err)
			log.Fatalf("Failed to resolve document root: %v", err)
		}
	}
	documents, err := storage.NewDocumentStore(docRoot)
	if err != nil {
		logger.Error("Failed to initialize document store", "error", err)
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	logger.Info("Document store ready", "root", docRoot)

	// Initialize Email Service (optional; member creation works without it)
	var emailSvc service.EmailService
	if cfg.SMTP.Host != "" {
		emailSvc = service.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
		logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	} else {
		logger.Info("No SMTP host configured, email notifications disabled")
	}

	// Initialize Services
	memberSvc := service.NewMemberService(store.MemberRepository, emailSvc)
	appointmentSvc := service.NewAppointmentService(store.AppointmentRepository)
	formSvc := service.NewFormService(store.FormRepository, documents)
	participationSvc := service.NewParticipationService(store.ParticipationRepository)

	logStartupSummary(memberSvc, appointmentSvc, formSvc, participationSvc)

	// Initialize health monitoring
	interval := time.Duration(cfg.Scheduler.HealthCheckSeconds) * time.Second
	monitor := health.NewMonitor(db, interval, func(s health.Status) {
		if s.Healthy {
			logger.Debug("Database health check passed", "checked_at", s.CheckedAt)
		} else {
			logger.Warn("Database health check failed", "checked_at", s.CheckedAt, "error", s.Err)
		}
	})
	monitor.Start()
	defer monitor.Stop()

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, &jobs.Services{Email: emailSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	logger.Info("Club backend is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cronScheduler.Stop()
	logger.Info("Goodbye!")
}

// logStartupSummary reports club activity counts at startup. Counts read
// zero while the database is unreachable.
func logStartupSummary(
	members service.MemberService,
	appointments service.AppointmentService,
	forms service.FormService,
	participations service.ParticipationService,
) {
	ctx := context.Background()
	logger.Info("Club activity summary",
		"members", len(members.List(ctx)),
		"upcoming_appointments", len(appointments.List(ctx, true)),
		"pending_forms", len(forms.List(ctx, true)),
		"participations", len(participations.List(ctx)),
	)
}
