package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// alias pendek untuk handler
type Ctx = gin.Context
type H = gin.H

// App mengikat semua dependency proses: router, Postgres, Redis, konfigurasi.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config

	sess *session.Store
}

type Config struct {
	RedisAddr  string
	RedisPwd   string
	WebOrigin  string
	JWTSecret  string
	SessionTTL time.Duration

	// akun admin pertama, dibuat saat boot kalau belum ada
	BootstrapUsername string
	BootstrapEmail    string
	BootstrapPassword string
}

func (a *App) Sessions() *session.Store { return a.sess }

func MustNew() *App {
	cfg := loadConfig()

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	a := &App{
		Router: r, DB: dbConn, RDB: rdb, Config: cfg,
		sess: session.NewStore(rdb, cfg.SessionTTL),
	}
	return a
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttlSec := get("SESSION_TTL_SECONDS", "86400")
	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(ttlSec + "s"); err == nil {
		ttl = d
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("config: JWT_SECRET wajib diisi")
	}
	return Config{
		RedisAddr:  get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigin:  get("WEB_ORIGIN", "http://localhost:5173"),
		JWTSecret:  secret,
		SessionTTL: ttl,

		BootstrapUsername: strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_USERNAME")),
		BootstrapEmail:    strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_EMAIL")),
		BootstrapPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
}
