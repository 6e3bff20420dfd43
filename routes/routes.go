package routes

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/controllers"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	auth := controllers.GetAuthController(s)
	users := controllers.GetUserController(s)
	barang := controllers.GetBarangController(s)
	pinjam := controllers.GetPeminjamanController(s)
	rawat := controllers.GetPerawatanController(s)
	dash := controllers.GetDashboardController(s)
	laporan := controllers.GetLaporanController(s)

	authMW := app.AuthRequired(s.Sess, s.Repo, s.Cfg)
	adminMW := app.AdminOnly()

	// ------------------------------
	// Auth (publik + terproteksi)
	// ------------------------------
	r.POST("/auth/login", auth.Login)

	authed := r.Group("/auth", authMW)
	{
		authed.POST("/logout", auth.Logout)
		authed.GET("/me", auth.Me)
		authed.PUT("/me", auth.UpdateProfile)
	}

	// ------------------------------
	// API terproteksi
	// ------------------------------
	api := r.Group("/api", authMW)

	api.GET("/dashboard/summary", dash.Summary)

	b := api.Group("/barang")
	{
		b.GET("", barang.ListBarang)
		b.GET("/:id", barang.GetBarang)
		b.GET("/:id/history/peminjaman", barang.HistoryPeminjaman)
		b.GET("/:id/history/perawatan", barang.HistoryPerawatan)

		b.POST("", app.MenuRequired(models.MenuInformasi), barang.CreateBarang)
		b.PUT("/:id", app.MenuRequired(models.MenuInformasi), barang.UpdateBarang)
		b.DELETE("/:id", adminMW, barang.DeleteBarang)
	}

	p := api.Group("/peminjaman", app.MenuRequired(models.MenuTransaksi))
	{
		p.GET("", pinjam.List)
		p.GET("/:id", pinjam.Get)
		p.POST("", pinjam.Pinjam)
		p.POST("/:id/kembali", pinjam.Kembali)
	}

	w := api.Group("/perawatan", app.MenuRequired(models.MenuTransaksi))
	{
		w.GET("", rawat.List)
		w.GET("/:id", rawat.Get)
		w.POST("", rawat.Ajukan)
		w.POST("/:id/selesai", rawat.Selesai)
	}

	l := api.Group("/laporan", app.MenuRequired(models.MenuLaporan))
	{
		l.GET("/master-barang", laporan.MasterBarang)
	}

	u := api.Group("/users", adminMW)
	{
		u.GET("", users.ListUsers)
		u.GET("/:id", users.GetUser)
		u.POST("", users.CreateUser)
		u.PUT("/:id", users.UpdateUser)
		u.DELETE("/:id", users.DeleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
	})
}
