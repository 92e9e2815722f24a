package models

import (
	"time"
)

// Producto represents a catalog item. Deletion is soft: rows are flagged
// inactive rather than removed, so historical orders keep their reference.
type Producto struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"column:nombre;not null" json:"nombre"`
	Categoria     string    `gorm:"column:categoria;not null" json:"categoria"`
	Precio        float64   `gorm:"column:precio;type:decimal(10,2);not null" json:"precio"`
	Descripcion   string    `gorm:"column:descripcion" json:"descripcion"`
	ImagenURL     string    `gorm:"column:imagen_url" json:"imagen"`
	Activo        bool      `gorm:"column:activo" json:"-"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"-"`
}

// TableName specifies the table name for the Producto model
func (Producto) TableName() string {
	return "productos"
}
