package controllers

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BarangController struct{ *Srv }

func GetBarangController(s *Srv) *BarangController { return &BarangController{Srv: s} }

type barangReq struct {
	KodeBarang  string `json:"kodeBarang" binding:"required"`
	NUP         string `json:"nup"`
	NamaBarang  string `json:"namaBarang" binding:"required"`
	MerkType    string `json:"merkType"`
	Ukuran      string `json:"ukuran"`
	JenisBarang string `json:"jenisBarang"`

	Gudang    string `json:"gudang"`
	Lokasi    string `json:"lokasi"`
	Koordinat string `json:"koordinat"` // "lat, lng" dari form; diparse sekali di sini

	Kondisi string `json:"kondisi" binding:"required"`
	Status  string `json:"status"` // kosong = TERSEDIA; override manual hanya lewat form admin

	TglPerolehan string `json:"tglPerolehan"` // "2006-01-02"
	TglSurat     string `json:"tglSurat"`

	PhotoURL         string `json:"photoUrl"`
	BuktiKepemilikan string `json:"buktiKepemilikan"`
	BarcodeProduk    string `json:"barcodeProduk"`
	BarcodeSN        string `json:"barcodeSn"`
	Nopol            string `json:"nopol"`
	Pemakai          string `json:"pemakai"`
	Keterangan       string `json:"keterangan"`
}

func (in *barangReq) apply(b *models.Barang) (string, bool) {
	kondisi := models.KondisiBarang(in.Kondisi)
	if !kondisi.Valid() {
		return "kondisi", false
	}
	status := models.StatusTersedia
	if in.Status != "" {
		status = models.StatusBarang(in.Status)
		if !status.Valid() {
			return "status", false
		}
	}
	var koordinat models.Koordinat
	if in.Koordinat != "" {
		parsed, err := models.ParseKoordinat(in.Koordinat)
		if err != nil {
			return "koordinat", false
		}
		koordinat = parsed
	}
	tglPerolehan, ok := parseDate(in.TglPerolehan)
	if !ok {
		return "tglPerolehan", false
	}
	tglSurat, ok := parseDate(in.TglSurat)
	if !ok {
		return "tglSurat", false
	}

	b.KodeBarang = in.KodeBarang
	b.NUP = in.NUP
	b.NamaBarang = in.NamaBarang
	b.MerkType = in.MerkType
	b.Ukuran = in.Ukuran
	b.JenisBarang = in.JenisBarang
	b.Gudang = in.Gudang
	b.Lokasi = in.Lokasi
	b.Koordinat = koordinat
	b.Kondisi = kondisi
	b.Status = status
	b.TglPerolehan = tglPerolehan
	b.TglSurat = tglSurat
	b.PhotoURL = in.PhotoURL
	b.BuktiKepemilikan = in.BuktiKepemilikan
	b.BarcodeProduk = in.BarcodeProduk
	b.BarcodeSN = in.BarcodeSN
	b.Nopol = in.Nopol
	b.Pemakai = in.Pemakai
	b.Keterangan = in.Keterangan
	return "", true
}

// GET /api/barang?q=&status=&page=&size=
func (bc *BarangController) ListBarang(c *gin.Context) {
	page, size := pageParams(c)
	res, err := bc.Repo.ListBarang(c.Request.Context(), db.BarangQuery{
		Q:      c.Query("q"),
		Status: c.Query("status"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "items": res.Items})
}

// GET /api/barang/:id
func (bc *BarangController) GetBarang(c *gin.Context) {
	b, err := bc.Repo.FindBarangByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/barang
func (bc *BarangController) CreateBarang(c *gin.Context) {
	var in barangReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	b := &models.Barang{ID: uuid.NewString()}
	if field, ok := in.apply(b); !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "nilai tidak valid", "subject": field})
		return
	}
	if err := bc.Repo.CreateBarang(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/barang/:id
func (bc *BarangController) UpdateBarang(c *gin.Context) {
	var in barangReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	b, err := bc.Repo.FindBarangByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	if field, ok := in.apply(b); !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "nilai tidak valid", "subject": field})
		return
	}
	if err := bc.Repo.SaveBarang(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/barang/:id
func (bc *BarangController) DeleteBarang(c *gin.Context) {
	if err := bc.Repo.DeleteBarang(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/barang/:id/history/peminjaman
func (bc *BarangController) HistoryPeminjaman(c *gin.Context) {
	page, size := pageParams(c)
	res, err := bc.Repo.HistoryPeminjamanByBarang(c.Request.Context(), c.Param("id"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "items": res.Items})
}

// GET /api/barang/:id/history/perawatan
func (bc *BarangController) HistoryPerawatan(c *gin.Context) {
	page, size := pageParams(c)
	res, err := bc.Repo.HistoryPerawatanByBarang(c.Request.Context(), c.Param("id"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "items": res.Items})
}
