package models

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// seedProductos is the fixed sample catalog inserted when the productos
// table is created for the first time.
var seedProductos = []Producto{
	{Nombre: "Pegatina de Estrellas", Categoria: "pegatinas", Precio: 2.50, Descripcion: "Pegatina con diseño de estrellas brillantes", ImagenURL: "https://via.placeholder.com/300x200/9c88ff/ffffff?text=Pegatina+Estrellas", Activo: true},
	{Nombre: "Collar de Corazón", Categoria: "collares", Precio: 8.00, Descripcion: "Collar elegante con dije de corazón", ImagenURL: "https://via.placeholder.com/300x200/c2b5ff/ffffff?text=Collar+Corazón", Activo: true},
	{Nombre: "Llavero de Panda", Categoria: "llaveros", Precio: 3.00, Descripcion: "Llavero adorable con forma de panda", ImagenURL: "https://via.placeholder.com/300x200/7b6ce0/ffffff?text=Llavero+Panda", Activo: true},
	{Nombre: "Pegatina de Luna", Categoria: "pegatinas", Precio: 2.75, Descripcion: "Pegatina con diseño de luna y estrellas", ImagenURL: "https://via.placeholder.com/300x200/9c88ff/ffffff?text=Pegatina+Luna", Activo: true},
	{Nombre: "Collar de Perlas", Categoria: "collares", Precio: 12.00, Descripcion: "Collar elegante con perlas artificiales", ImagenURL: "https://via.placeholder.com/300x200/c2b5ff/ffffff?text=Collar+Perlas", Activo: true},
	{Nombre: "Llavero de Gato", Categoria: "llaveros", Precio: 3.50, Descripcion: "Llavero con forma de gatito", ImagenURL: "https://via.placeholder.com/300x200/7b6ce0/ffffff?text=Llavero+Gato", Activo: true},
}

// EnsureSchema migrates the pedidos and productos tables and seeds the
// sample catalog when productos is created for the first time. It is
// idempotent: on later startups the migration no-ops and the seed is
// skipped, so restarts never duplicate rows.
func EnsureSchema(db *gorm.DB) error {
	firstRun := !db.Migrator().HasTable(&Producto{})

	if err := db.AutoMigrate(&Pedido{}, &Producto{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if firstRun {
		productos := make([]Producto, len(seedProductos))
		copy(productos, seedProductos)
		if err := db.Create(&productos).Error; err != nil {
			return fmt.Errorf("failed to seed productos: %w", err)
		}
		log.Printf("Seeded productos table with %d sample products", len(productos))
	}

	return nil
}
