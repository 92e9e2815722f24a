package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"github.com/tienda-plus/tienda-plus-api/config"
	"github.com/tienda-plus/tienda-plus-api/models"
)

// requiredPedidoFields are the fields every order submission must carry
var requiredPedidoFields = []string{"nombre", "grado", "producto", "cantidad"}

// CreatePedido handles POST /api/pedidos - records a customer order.
// Orders are append-only; there is no update or delete route for them.
func CreatePedido(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se recibieron datos JSON"})
		return
	}

	if missing := missingFields(data, requiredPedidoFields); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Campos requeridos faltantes: " + strings.Join(missing, ", "),
		})
		return
	}

	cantidad, err := cast.ToIntE(data["cantidad"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El campo cantidad debe ser numérico"})
		return
	}

	pedido := models.Pedido{
		Nombre:   stringField(data, "nombre"),
		Grado:    stringField(data, "grado"),
		Producto: stringField(data, "producto"),
		Cantidad: cantidad,
		Detalles: stringField(data, "detalles"),
	}

	db := config.GetDB()
	if err := db.Create(&pedido).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error del servidor: %v", err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Pedido creado exitosamente",
		"pedido_id": pedido.ID,
		"servidor":  config.GetConfig().ServerName,
	})
}

// ListPedidos handles GET /api/pedidos - returns every order, newest first
func ListPedidos(c *gin.Context) {
	db := config.GetDB()

	pedidos := []models.Pedido{}
	if err := db.Order("fecha DESC").Find(&pedidos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pedidos)
}

// productoVendido is one row of the best-sellers aggregate
type productoVendido struct {
	Producto string `json:"producto"`
	Total    int64  `json:"total"`
}

// GetEstadisticas handles GET /api/estadisticas - order and catalog
// aggregates for the admin dashboard
func GetEstadisticas(c *gin.Context) {
	db := config.GetDB()

	var totalPedidos int64
	if err := db.Model(&models.Pedido{}).Count(&totalPedidos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var porGrado []struct {
		Grado string
		Total int64
	}
	if err := db.Model(&models.Pedido{}).
		Select("grado, COUNT(*) as total").
		Group("grado").
		Scan(&porGrado).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pedidosPorGrado := make(map[string]int64, len(porGrado))
	for _, row := range porGrado {
		pedidosPorGrado[row.Grado] = row.Total
	}

	masVendidos := []productoVendido{}
	if err := db.Model(&models.Pedido{}).
		Select("producto, SUM(cantidad) as total").
		Group("producto").
		Order("total DESC").
		Scan(&masVendidos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalProductos int64
	if err := db.Model(&models.Producto{}).Where("activo = ?", true).Count(&totalProductos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_pedidos":          totalPedidos,
		"pedidos_por_grado":      pedidosPorGrado,
		"productos_mas_vendidos": masVendidos,
		"total_productos":        totalProductos,
	})
}
