package controllers

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/gin-gonic/gin"
)

type PeminjamanController struct{ *Srv }

func GetPeminjamanController(s *Srv) *PeminjamanController {
	return &PeminjamanController{Srv: s}
}

// GET /api/peminjaman?status=&page=&size=
func (pc *PeminjamanController) List(c *gin.Context) {
	page, size := pageParams(c)
	res, err := pc.Repo.ListPeminjaman(c.Request.Context(), db.PeminjamanQuery{
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

// GET /api/peminjaman/:id
func (pc *PeminjamanController) Get(c *gin.Context) {
	p, err := pc.Repo.FindPeminjamanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type pinjamReq struct {
	BarangIDs  []string `json:"barangIds" binding:"required,min=1"`
	Keperluan  string   `json:"keperluan" binding:"required"`
	Keterangan string   `json:"keterangan"`

	TglKembaliRencana string `json:"tglKembaliRencana"` // "2006-01-02"

	PenanggungJawabName    string `json:"penanggungJawabName"`
	PenanggungJawabNIP     string `json:"penanggungJawabNip"`
	PenanggungJawabJabatan string `json:"penanggungJawabJabatan"`
}

// POST /api/peminjaman (checkout). Semua barang harus TERSEDIA, kalau satu
// gagal seluruh pengajuan ditolak.
func (pc *PeminjamanController) Pinjam(c *gin.Context) {
	var in pinjamReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rencana, ok := parseDate(in.TglKembaliRencana)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "tanggal tidak valid", "subject": "tglKembaliRencana"})
		return
	}

	u := app.CurrentUser(c)
	p, err := pc.Repo.PinjamBarang(c.Request.Context(), u.ID, in.BarangIDs, models.PinjamInput{
		Keperluan:              in.Keperluan,
		Keterangan:             in.Keterangan,
		TglKembaliRencana:      rencana,
		PenanggungJawabName:    in.PenanggungJawabName,
		PenanggungJawabNIP:     in.PenanggungJawabNIP,
		PenanggungJawabJabatan: in.PenanggungJawabJabatan,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type kembaliReq struct {
	// kondisi kembali per barang id, wajib untuk setiap barang di peminjaman
	KondisiKembali map[string]string `json:"kondisiKembali" binding:"required"`
	Keterangan     string            `json:"keterangan"`
	BeritaAcaraURL string            `json:"beritaAcaraUrl"`
}

// POST /api/peminjaman/:id/kembali (checkin).
func (pc *PeminjamanController) Kembali(c *gin.Context) {
	var in kembaliReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	kondisi := make(map[string]models.KondisiBarang, len(in.KondisiKembali))
	for barangID, v := range in.KondisiKembali {
		k, ok := models.NormalizeKondisiKembali(v)
		if !ok {
			c.JSON(http.StatusBadRequest, app.H{"error": "kondisi tidak dikenal", "subject": barangID})
			return
		}
		kondisi[barangID] = k
	}

	p, err := pc.Repo.KembalikanBarang(c.Request.Context(), c.Param("id"), models.KembaliInput{
		Kondisi:        kondisi,
		Keterangan:     in.Keterangan,
		BeritaAcaraURL: in.BeritaAcaraURL,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
