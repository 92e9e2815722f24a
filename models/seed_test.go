package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

func TestEnsureSchemaCreatesTablesAndSeeds(t *testing.T) {
	db := openTestDB(t)

	err := EnsureSchema(db)
	assert.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&Producto{}))
	assert.True(t, db.Migrator().HasTable(&Pedido{}))

	var count int64
	db.Model(&Producto{}).Count(&count)
	assert.Equal(t, int64(6), count, "first run should seed the sample catalog")

	// All seeded products start active
	var active int64
	db.Model(&Producto{}).Where("activo = ?", true).Count(&active)
	assert.Equal(t, int64(6), active)

	// Two products per category
	var categorias []string
	db.Model(&Producto{}).Distinct("categoria").Order("categoria").Pluck("categoria", &categorias)
	assert.Equal(t, []string{"collares", "llaveros", "pegatinas"}, categorias)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, EnsureSchema(db))
	assert.NoError(t, EnsureSchema(db))

	var count int64
	db.Model(&Producto{}).Count(&count)
	assert.Equal(t, int64(6), count, "second run must not duplicate seed rows")
}

func TestEnsureSchemaDoesNotReseedAfterDeactivation(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, EnsureSchema(db))

	// Deactivate everything, then bootstrap again: rows must stay as-is
	db.Model(&Producto{}).Where("1 = 1").Update("activo", false)
	assert.NoError(t, EnsureSchema(db))

	var active int64
	db.Model(&Producto{}).Where("activo = ?", true).Count(&active)
	assert.Equal(t, int64(0), active)

	var count int64
	db.Model(&Producto{}).Count(&count)
	assert.Equal(t, int64(6), count)
}
