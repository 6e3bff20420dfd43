// controllers/srv.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/session"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Repo *db.Repo
	Sess *session.Store
	Cfg  app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo: db.NewRepo(a.DB),
		Sess: a.Sessions(),
		Cfg:  a.Config,
	}
}

// --- helpers ---

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

// writeErr memetakan error bisnis ke status HTTP sesuai taksonomi:
// validasi 400, prasyarat/konflik 409, tidak ditemukan 404, sisanya 500.
func writeErr(c *gin.Context, err error) {
	body := app.H{"error": err.Error()}
	if s := models.Subject(err); s != "" {
		body["subject"] = s
	}
	switch models.Code(err) {
	case models.ErrValidation, models.ErrMissingKondisi, models.ErrMissingGejala, models.ErrMissingResolusi:
		c.JSON(http.StatusBadRequest, body)
	case models.ErrNotAvailable, models.ErrInMaintenance, models.ErrAlreadySelesai:
		c.JSON(http.StatusConflict, body)
	case models.ErrBarangNotFound, models.ErrNotFound:
		c.JSON(http.StatusNotFound, body)
	default:
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// parseDate menerima tanggal gaya form "2006-01-02"; kosong = nil.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
