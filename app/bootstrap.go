// app/bootstrap.go
package app

import (
	"context"
	"log"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstAdmin membuat akun ADMIN pertama dari environment kalau
// belum ada admin sama sekali. Instalasi baru langsung bisa login.
func BootstrapFirstAdmin(ctx context.Context, cfg Config, repo *db.Repo) {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return
	}
	n, err := repo.CountAdmins(ctx)
	if err != nil {
		log.Printf("bootstrap: gagal menghitung admin: %v", err)
		return
	}
	if n > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bootstrap: hash password gagal: %v", err)
		return
	}
	u := &models.User{
		ID:       uuid.NewString(),
		Username: cfg.BootstrapUsername,
		Email:    cfg.BootstrapEmail,
		Name:     cfg.BootstrapUsername,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		log.Printf("bootstrap: buat admin gagal: %v", err)
		return
	}
	log.Printf("[BOOTSTRAP] admin pertama dibuat: %s", u.Username)
}
