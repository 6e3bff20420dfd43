package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv memuat .env kalau ada; di deployment variabel datang dari environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: .env tidak ditemukan, pakai environment")
	}
}
