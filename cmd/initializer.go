package main

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"mistriBack/internal/handlers"
	"mistriBack/internal/repositories"
	"mistriBack/internal/services"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	mechanicHandler *handlers.MechanicHandler
	mechanicRepo    *repositories.MechanicRepository
	reviewHandler   *handlers.ReviewHandler
	reviewRepo      *repositories.ReviewRepository
	favoriteHandler *handlers.FavoriteHandler
	favoriteRepo    *repositories.FavoriteRepository
	taxonomyHandler *handlers.TaxonomyHandler
	uploadHandler   *handlers.UploadHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	// Repositories
	mechanicRepo := repositories.MechanicRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}

	// Services
	mechanicService := &services.MechanicService{MechanicRepo: &mechanicRepo}
	reviewService := &services.ReviewService{ReviewsRepo: &reviewRepo, MechanicRepo: &mechanicRepo}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo}

	// Handlers
	mechanicHandler := &handlers.MechanicHandler{Service: mechanicService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	taxonomyHandler := &handlers.TaxonomyHandler{}
	uploadHandler := &handlers.UploadHandler{}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		mechanicHandler: mechanicHandler,
		mechanicRepo:    &mechanicRepo,
		reviewHandler:   reviewHandler,
		reviewRepo:      &reviewRepo,
		favoriteHandler: favoriteHandler,
		favoriteRepo:    &favoriteRepo,
		taxonomyHandler: taxonomyHandler,
		uploadHandler:   uploadHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
