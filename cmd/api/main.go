package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/staynest/staynest-backend/internal/database"
	"github.com/staynest/staynest-backend/internal/handlers"
	"github.com/staynest/staynest-backend/internal/middleware"
	"github.com/staynest/staynest-backend/internal/repository"
	"github.com/staynest/staynest-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis (optional - the API degrades to uncached reads)
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	listingRepo := repository.NewListingRepository(db)
	imageRepo := repository.NewImageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	listingSvc := services.NewListingService(listingRepo, reviewRepo, bookingRepo)
	imageSvc := services.NewImageService(imageRepo, listingRepo)
	bookingSvc := services.NewBookingService(bookingRepo, listingRepo)
	reviewSvc := services.NewReviewService(reviewRepo, listingRepo)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads
	r.Static("/uploads", "/app/uploads")

	// Routes
	api := r.Group("/api")
	{
		// Public reads resolve the principal when a token is present
		public := api.Group("/")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/listings", handlers.ListListings(listingSvc))
			public.GET("/listings/:id", handlers.GetListing(listingSvc))
			public.GET("/listings/:id/reviews", handlers.GetListingReviews(listingSvc))

			public.GET("/listing-images", handlers.ListListingImages(imageSvc))
			public.GET("/listing-images/:id", handlers.GetListingImage(imageSvc))

			public.GET("/reviews", handlers.ListReviews(reviewSvc))
			public.GET("/reviews/:id", handlers.GetReview(reviewSvc))

			// Anonymous callers get an empty list here, not an error
			public.GET("/bookings", handlers.ListBookings(bookingSvc))
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
			}

			listings := protected.Group("/listings")
			{
				listings.POST("", handlers.CreateListing(listingSvc))
				listings.PUT("/:id", handlers.UpdateListing(listingSvc))
				listings.DELETE("/:id", handlers.DeleteListing(listingSvc))
				listings.GET("/:id/bookings", handlers.GetListingBookings(listingSvc))
			}

			images := protected.Group("/listing-images")
			{
				images.POST("", handlers.CreateListingImage(imageSvc))
				images.PUT("/:id", handlers.UpdateListingImage(imageSvc))
				images.DELETE("/:id", handlers.DeleteListingImage(imageSvc))
			}

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(bookingSvc))
				bookings.GET("/:id", handlers.GetBooking(bookingSvc))
				bookings.PUT("/:id", handlers.UpdateBooking(bookingSvc))
				bookings.DELETE("/:id", handlers.DeleteBooking(bookingSvc))
				bookings.PATCH("/:id/status", handlers.UpdateBookingStatus(bookingSvc))
			}

			reviews := protected.Group("/reviews")
			{
				reviews.POST("", handlers.CreateReview(reviewSvc))
				reviews.PUT("/:id", handlers.UpdateReview(reviewSvc))
				reviews.DELETE("/:id", handlers.DeleteReview(reviewSvc))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
