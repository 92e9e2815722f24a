package models

import (
	"time"
)

// Pedido represents a customer order. Pedidos are append-only: once
// recorded they are never updated or deleted.
//
// Producto is a free-text product name, not a foreign key into the
// productos table, so orders survive catalog edits and deactivations.
type Pedido struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Nombre   string    `gorm:"column:nombre;not null" json:"nombre"`
	Grado    string    `gorm:"column:grado;not null" json:"grado"`
	Producto string    `gorm:"column:producto;not null" json:"producto"`
	Cantidad int       `gorm:"column:cantidad;not null" json:"cantidad"`
	Detalles string    `gorm:"column:detalles" json:"detalles"`
	Fecha    time.Time `gorm:"column:fecha;autoCreateTime" json:"fecha"`
}

// TableName specifies the table name for the Pedido model
func (Pedido) TableName() string {
	return "pedidos"
}
