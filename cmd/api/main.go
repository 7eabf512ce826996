package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/burningpaper/workfromhome/internal/config"
	"github.com/burningpaper/workfromhome/internal/domain/dashboard"
	appHTTP "github.com/burningpaper/workfromhome/internal/handler/http"
	"github.com/burningpaper/workfromhome/internal/pkg/database"
	"github.com/burningpaper/workfromhome/internal/repository/postgresql"
	checkinService "github.com/burningpaper/workfromhome/internal/service/checkin"
	dashboardService "github.com/burningpaper/workfromhome/internal/service/dashboard"
	ingestService "github.com/burningpaper/workfromhome/internal/service/ingest"
	userService "github.com/burningpaper/workfromhome/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	// Schema init is an explicit startup step with its own error surface,
	// not a side effect of first use.
	if err := postgresql.InitSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}

	loc := cfg.Location()

	checkinRepo := postgresql.NewCheckinRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	store := checkinService.NewStore(checkinRepo, loc)
	ingest := ingestService.NewIngestService(store)
	importer := userService.NewImporter(db, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		dashboardRepo,
		checkinRepo,
		userRepo,
		dashboard.GroupDimension(cfg.Dashboard.GroupBy),
		loc,
	)

	webhookHandler := appHTTP.NewWebhookHandler(ingest)
	reportHandler := appHTTP.NewReportHandler(store, loc)
	userHandler := appHTTP.NewUserHandler(importer)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	adminHandler := appHTTP.NewAdminHandler(db)

	router := appHTTP.NewRouter(
		cfg,
		webhookHandler,
		reportHandler,
		userHandler,
		dashboardHandler,
		adminHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("WFH Beacon server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
