package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tienda-plus/tienda-plus-api/config"
	"github.com/tienda-plus/tienda-plus-api/controllers"
	"github.com/tienda-plus/tienda-plus-api/models"
	"github.com/tienda-plus/tienda-plus-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Tienda Plus API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Ensure schema exists and the sample catalog is seeded on first run.
	// A broken schema means every route fails, so this is fatal.
	if err := models.EnsureSchema(config.GetDB()); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}
	log.Println("Database schema ready")

	// Image storage is optional; without a bucket the upload route
	// reports storage as unconfigured
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		log.Println("S3 image storage initialized")
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Root route - static landing page (the catalog frontend is served
	// separately in production)
	router.GET("/", index)

	// API routes. None of these require authentication, including the
	// admin ones - inherited from the original deployment where the API
	// was only reachable on a school LAN.
	api := router.Group("/api")
	{
		api.GET("/sql-status", controllers.SQLStatus)

		api.GET("/productos", controllers.ListProductos)
		api.POST("/productos", controllers.CreateProducto)
		api.PUT("/productos/:id", controllers.UpdateProducto)
		api.DELETE("/productos/:id", controllers.DeleteProducto)
		api.POST("/productos/imagen", controllers.UploadProductoImagen)

		api.POST("/pedidos", controllers.CreatePedido)
		api.GET("/pedidos", controllers.ListPedidos)
		api.GET("/estadisticas", controllers.GetEstadisticas)
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// index serves a minimal landing page at the root route
func index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(
		"<!DOCTYPE html><html><head><title>Tienda Plus</title></head>"+
			"<body><h1>Tienda Plus API</h1><p>Ver /api/productos</p></body></html>"))
}
