package db

import (
	"fmt"
	"log"
	"os"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	err = Migrate(DB)
	if err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{}, &models.Permission{},
		&models.Barang{},
		&models.Peminjaman{}, &models.PeminjamanDetail{},
		&models.Perawatan{}, &models.PerawatanDetail{},
	); err != nil {
		return err
	}

	// satu barang maksimal punya satu detail peminjaman yang belum kembali
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_open_per_barang
	  ON %s (barang_id)
	  WHERE kondisi_kembali IS NULL;
	`, models.PeminjamanDetailTable, models.PeminjamanDetailTable)).Error; err != nil {
		return err
	}

	// satu barang maksimal satu perawatan yang belum selesai
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_open_per_barang
	  ON %s (barang_id)
	  WHERE kondisi_kembali IS NULL;
	`, models.PerawatanDetailTable, models.PerawatanDetailTable)).Error; err != nil {
		return err
	}

	return nil
}
