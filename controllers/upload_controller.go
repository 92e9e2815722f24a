package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tienda-plus/tienda-plus-api/services"
	"github.com/tienda-plus/tienda-plus-api/utils"
)

// UploadProductoImagen handles POST /api/productos/imagen - stores a PNG
// product image in S3 and returns a presigned URL suitable for the
// imagen field of a product. Like the rest of the admin surface, this
// route is unauthenticated.
func UploadProductoImagen(c *gin.Context) {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se recibió ningún archivo"})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s3Service := services.GetS3Service()
	if s3Service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Almacenamiento de imágenes no configurado"})
		return
	}

	s3Key, err := s3Service.UploadImage(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	imagenURL, err := s3Service.GetPresignedURL(s3Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Imagen subida exitosamente",
		"imagen":  imagenURL,
		"s3_key":  s3Key,
	})
}
