// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/sparkles-site/internal/auth"
	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/controller"
	"github.com/unclebandit/sparkles-site/internal/db"
	"github.com/unclebandit/sparkles-site/internal/geocode"
	"github.com/unclebandit/sparkles-site/internal/handler"
	"github.com/unclebandit/sparkles-site/internal/media"
	"github.com/unclebandit/sparkles-site/internal/queue"
	"github.com/unclebandit/sparkles-site/internal/repository"
	"github.com/unclebandit/sparkles-site/internal/service"
	"github.com/unclebandit/sparkles-site/internal/site"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	// Init DB
	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()
	if err := db.Migrate(ctx, conn); err != nil {
		log.Fatal("failed to migrate DB:", err)
	}

	contentRepo := &repository.ContentRepository{DB: conn}
	testimonialRepo := &repository.TestimonialRepository{DB: conn}
	faqRepo := &repository.FAQRepository{DB: conn}
	locationRepo := &repository.LocationRepository{DB: conn}
	contactRepo := &repository.ContactSettingsRepository{DB: conn}
	settingRepo := &repository.SiteSettingRepository{DB: conn}
	inquiryRepo := &repository.InquiryRepository{DB: conn}
	userRepo := &repository.AdminUserRepository{DB: conn}

	// Queue: RabbitMQ when configured (cmd/worker consumes), else in-process
	var q queue.Queue
	if cfg.Queue.AMQPURL != "" {
		aq, err := queue.DialAMQP(cfg.Queue.AMQPURL)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ:", err)
		}
		defer aq.Close()
		q = aq
	} else {
		mq := queue.NewInMemoryQueue()
		if err := queue.StartContactSubscriber(ctx, mq, service.NewWorker(inquiryRepo, nil)); err != nil {
			log.Fatal(err)
		}
		q = mq
	}

	settingsService := &service.SettingsService{Repo: settingRepo, DefaultMapKey: cfg.Maps.APIKey}
	loader := &site.Loader{
		Content:      &service.ContentService{ContentRepo: contentRepo},
		Testimonials: &service.TestimonialService{Repo: testimonialRepo},
		FAQs:         &service.FAQService{Repo: faqRepo},
		Locations: &service.LocationService{
			Repo:     locationRepo,
			Geocoder: geocode.NewClient(cfg.Maps.GeocodeEndpoint),
			Settings: settingsService,
		},
		Contact:  &service.ContactService{Repo: contactRepo},
		Settings: settingsService,
		Brand:    cfg.Brand,
	}
	inquiryService := &service.InquiryService{Repo: inquiryRepo, Queue: q}
	authService := &auth.Service{
		Users: userRepo,
		Store: auth.NewCookieStore(cfg.Server.SessionSecret, cfg.Server.IsProduction()),
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	siteHandler := &handler.SiteHandler{
		Loader:    loader,
		Renderer:  renderer,
		Inquiries: inquiryService,
		Auth:      authService,
		Brand:     cfg.Brand,
		DB:        conn,
	}
	adminController := &controller.AdminController{
		Auth:         authService,
		Content:      loader.Content,
		Testimonials: loader.Testimonials,
		FAQs:         loader.FAQs,
		Locations:    loader.Locations,
		Contact:      loader.Contact,
		Settings:     settingsService,
		Inquiries:    inquiryService,
		Uploader: &media.Uploader{
			Store:    &media.DiskStore{Root: cfg.Media.Root, PublicPrefix: cfg.Media.PublicPrefix},
			MaxBytes: cfg.Media.MaxUploadBytes,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	siteHandler.Routes(r)
	r.Mount("/admin/api", adminController.Routes())
	r.Handle(cfg.Media.PublicPrefix+"/*", http.StripPrefix(cfg.Media.PublicPrefix, http.FileServer(http.Dir(cfg.Media.Root))))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running on", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("⚠️ graceful shutdown failed:", err)
	}
}
