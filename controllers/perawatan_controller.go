package controllers

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/gin-gonic/gin"
)

type PerawatanController struct{ *Srv }

func GetPerawatanController(s *Srv) *PerawatanController {
	return &PerawatanController{Srv: s}
}

// GET /api/perawatan?status=&page=&size=
func (wc *PerawatanController) List(c *gin.Context) {
	page, size := pageParams(c)
	res, err := wc.Repo.ListPerawatan(c.Request.Context(), db.PerawatanQuery{
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

// GET /api/perawatan/:id
func (wc *PerawatanController) Get(c *gin.Context) {
	w, err := wc.Repo.FindPerawatanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type ajukanReq struct {
	Hal        string `json:"hal" binding:"required"`
	Keterangan string `json:"keterangan"`

	TglSelesaiRencana string `json:"tglSelesaiRencana"` // "2006-01-02"

	PenanggungJawabName string `json:"penanggungJawabName"`
	PenanggungJawabNIP  string `json:"penanggungJawabNip"`

	// gejala per barang id, daftar barang diambil dari key map
	Gejala map[string]string `json:"gejala" binding:"required,min=1"`
}

// POST /api/perawatan: buka tiket perawatan.
func (wc *PerawatanController) Ajukan(c *gin.Context) {
	var in ajukanReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rencana, ok := parseDate(in.TglSelesaiRencana)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "tanggal tidak valid", "subject": "tglSelesaiRencana"})
		return
	}

	barangIDs := make([]string, 0, len(in.Gejala))
	for id := range in.Gejala {
		barangIDs = append(barangIDs, id)
	}

	u := app.CurrentUser(c)
	w, err := wc.Repo.AjukanPerawatan(c.Request.Context(), u.ID, barangIDs, models.AjukanPerawatanInput{
		Hal:                 in.Hal,
		Keterangan:          in.Keterangan,
		TglSelesaiRencana:   rencana,
		PenanggungJawabName: in.PenanggungJawabName,
		PenanggungJawabNIP:  in.PenanggungJawabNIP,
		Gejala:              in.Gejala,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

type resolusiReq struct {
	Perbaikan      string `json:"perbaikan"`
	Garansi        string `json:"garansi"` // "2006-01-02"
	KondisiKembali string `json:"kondisiKembali"`
}

type selesaiReq struct {
	// resolusi per barang id, wajib untuk setiap barang di tiket
	Resolusi   map[string]resolusiReq `json:"resolusi" binding:"required"`
	Keterangan string                 `json:"keterangan"`
}

// POST /api/perawatan/:id/selesai: tutup tiket.
func (wc *PerawatanController) Selesai(c *gin.Context) {
	var in selesaiReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	resolusi := make(map[string]models.Resolusi, len(in.Resolusi))
	for barangID, r := range in.Resolusi {
		kondisi, ok := models.NormalizeKondisiKembali(r.KondisiKembali)
		if !ok {
			c.JSON(http.StatusBadRequest, app.H{"error": "kondisi tidak dikenal", "subject": barangID})
			return
		}
		garansi, ok := parseDate(r.Garansi)
		if !ok {
			c.JSON(http.StatusBadRequest, app.H{"error": "tanggal tidak valid", "subject": barangID})
			return
		}
		resolusi[barangID] = models.Resolusi{
			Perbaikan:      r.Perbaikan,
			Garansi:        garansi,
			KondisiKembali: kondisi,
		}
	}

	w, err := wc.Repo.SelesaikanPerawatan(c.Request.Context(), c.Param("id"), models.SelesaiPerawatanInput{
		Resolusi:   resolusi,
		Keterangan: in.Keterangan,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
