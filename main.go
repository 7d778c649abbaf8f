package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Aashish23092/ocr-bill-extraction/client"
	"github.com/Aashish23092/ocr-bill-extraction/config"
	"github.com/Aashish23092/ocr-bill-extraction/handler"
	"github.com/Aashish23092/ocr-bill-extraction/service"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// VERY IMPORTANT: Set correct tessdata prefix for Tesseract v5
	if os.Getenv("TESSDATA_PREFIX") == "" {
		os.Setenv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/")
	}
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize clients
	downloadClient := client.NewDownloadClient(cfg.DownloadTimeout, cfg.MaxFileSize)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()
	qrClient := client.NewQRClient()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	billService := service.NewBillService(downloadClient, tesseractClient, qrClient, pdfProcessor)

	// Initialize handler layer
	billHandler := handler.NewBillHandler(billService)

	// Setup Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Bill Extraction API",
		})
	})

	// Usage hint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Bill Extraction API",
			"endpoint": "POST /extract-bill-data",
			"example_request": gin.H{
				"document": "https://example.com/your-bill.jpg",
			},
		})
	})

	// API routes
	router.POST("/extract-bill-data", billHandler.ExtractBillData)
	router.POST("/test-text", billHandler.ExtractFromText)

	// Start server
	log.Printf("Starting Bill Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
