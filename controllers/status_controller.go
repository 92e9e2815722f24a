package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tienda-plus/tienda-plus-api/config"
	"github.com/tienda-plus/tienda-plus-api/models"
)

// SQLStatus handles GET /api/sql-status - verifies database connectivity
// and reports server version plus row counts for the admin dashboard
func SQLStatus(c *gin.Context) {
	cfg := config.GetConfig()
	timestamp := time.Now().Format(time.RFC3339)

	fail := func(err error) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"server":    cfg.ServerName,
			"error":     err.Error(),
			"timestamp": timestamp,
		})
	}

	db := config.GetDB()
	if db == nil {
		fail(errors.New("database not connected"))
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		fail(err)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		fail(err)
		return
	}

	// Version and database-name queries differ per dialect; tests run
	// against sqlite while production runs against postgres
	versionQuery := "SELECT version()"
	databaseQuery := "SELECT current_database()"
	if db.Dialector.Name() == "sqlite" {
		versionQuery = "SELECT 'SQLite ' || sqlite_version()"
		databaseQuery = "SELECT 'main'"
	}

	var version string
	if err := db.Raw(versionQuery).Scan(&version).Error; err != nil {
		fail(err)
		return
	}

	var database string
	if err := db.Raw(databaseQuery).Scan(&database).Error; err != nil {
		fail(err)
		return
	}

	var totalPedidos int64
	if err := db.Model(&models.Pedido{}).Count(&totalPedidos).Error; err != nil {
		fail(err)
		return
	}

	var totalProductos int64
	if err := db.Model(&models.Producto{}).Where("activo = ?", true).Count(&totalProductos).Error; err != nil {
		fail(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "connected",
		"server":          cfg.ServerName,
		"database":        database,
		"version":         strings.SplitN(version, "\n", 2)[0],
		"total_pedidos":   totalPedidos,
		"total_productos": totalProductos,
		"timestamp":       timestamp,
	})
}
