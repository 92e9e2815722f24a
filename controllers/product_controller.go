package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"github.com/tienda-plus/tienda-plus-api/config"
	"github.com/tienda-plus/tienda-plus-api/models"
	"github.com/tienda-plus/tienda-plus-api/utils"
)

// requiredProductoFields are the fields every product creation must carry
var requiredProductoFields = []string{"nombre", "categoria", "precio"}

// ListProductos handles GET /api/productos - returns the active catalog,
// optionally filtered by exact category match via ?categoria=
func ListProductos(c *gin.Context) {
	db := config.GetDB()
	categoria := c.Query("categoria")

	query := db.Where("activo = ?", true)
	if categoria != "" && categoria != "todos" {
		query = query.Where("categoria = ?", categoria).Order("nombre")
	} else {
		query = query.Order("categoria, nombre")
	}

	productos := []models.Producto{}
	if err := query.Find(&productos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, productos)
}

// CreateProducto handles POST /api/productos - inserts a new active
// product. When no imagen is given, a placeholder URL derived from the
// product name is stored instead.
func CreateProducto(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se recibieron datos JSON"})
		return
	}

	if missing := missingFields(data, requiredProductoFields); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Campos requeridos faltantes: " + strings.Join(missing, ", "),
		})
		return
	}

	precio, err := cast.ToFloat64E(data["precio"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El campo precio debe ser numérico"})
		return
	}

	nombre := stringField(data, "nombre")
	imagen := stringField(data, "imagen")
	if imagen == "" {
		imagen = utils.PlaceholderImageURL(nombre)
	}

	producto := models.Producto{
		Nombre:      nombre,
		Categoria:   stringField(data, "categoria"),
		Precio:      precio,
		Descripcion: stringField(data, "descripcion"),
		ImagenURL:   imagen,
		Activo:      true,
	}

	db := config.GetDB()
	if err := db.Create(&producto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error del servidor: %v", err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Producto creado exitosamente",
		"producto_id": producto.ID,
	})
}

// UpdateProducto handles PUT /api/productos/:id - overwrites all editable
// columns with the submitted values. Fields absent from the body are
// written as empty/zero; the admin frontend always round-trips the full
// product, so a partial body means the caller cleared those fields. A
// nonexistent id still returns 200 with zero rows affected.
func UpdateProducto(c *gin.Context) {
	id, err := cast.ToIntE(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se recibieron datos JSON"})
		return
	}

	// Absent precio is written as zero, like every other omitted field
	var precio float64
	if raw, ok := data["precio"]; ok && raw != nil {
		precio, err = cast.ToFloat64E(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El campo precio debe ser numérico"})
			return
		}
	}

	db := config.GetDB()
	result := db.Model(&models.Producto{}).Where("id = ?", id).Updates(map[string]any{
		"nombre":      stringField(data, "nombre"),
		"categoria":   stringField(data, "categoria"),
		"precio":      precio,
		"descripcion": stringField(data, "descripcion"),
		"imagen_url":  stringField(data, "imagen"),
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto actualizado exitosamente"})
}

// DeleteProducto handles DELETE /api/productos/:id - soft-deletes a
// product by flagging it inactive, so existing pedidos keep a resolvable
// reference. Silently no-ops when the id does not exist.
func DeleteProducto(c *gin.Context) {
	id, err := cast.ToIntE(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	db := config.GetDB()
	result := db.Model(&models.Producto{}).Where("id = ?", id).Update("activo", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado exitosamente"})
}
