package controllers

import (
	"encoding/csv"
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"

	"github.com/gin-gonic/gin"
)

type LaporanController struct{ *Srv }

func GetLaporanController(s *Srv) *LaporanController {
	return &LaporanController{Srv: s}
}

// kolom kosong dicetak "-" supaya laporan tetap rapi di excel
func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// GET /api/laporan/master-barang: export CSV seluruh master barang.
func (lc *LaporanController) MasterBarang(c *gin.Context) {
	rows, err := lc.Repo.ListAllBarang(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="laporan_master_barang.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"ID", "Kode Barang", "NUP", "Nama Barang", "Merk/Type",
		"Kondisi", "Status", "Lokasi", "Tanggal Perolehan",
	})
	for i := range rows {
		b := &rows[i]
		perolehan := "-"
		if b.TglPerolehan != nil {
			perolehan = b.TglPerolehan.Format("2006-01-02")
		}
		_ = w.Write([]string{
			b.ID,
			dashIfEmpty(b.KodeBarang),
			dashIfEmpty(b.NUP),
			dashIfEmpty(b.NamaBarang),
			dashIfEmpty(b.MerkType),
			string(b.Kondisi),
			string(b.Status),
			dashIfEmpty(b.Lokasi),
			perolehan,
		})
	}
	w.Flush()
}
