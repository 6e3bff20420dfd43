package db

import (
	"context"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"
)

type DashboardSummary struct {
	TotalBarang    int64 `json:"totalBarang"`
	BarangTersedia int64 `json:"barangTersedia"`
	BarangDipinjam int64 `json:"barangDipinjam"`
	BarangDirawat  int64 `json:"barangDirawat"`
	BarangRusak    int64 `json:"barangRusak"`

	PeminjamanAktif int64 `json:"peminjamanAktif"`
	PerawatanAktif  int64 `json:"perawatanAktif"`
}

func (r *Repo) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var s DashboardSummary

	countStatus := func(st models.StatusBarang, dst *int64) error {
		return r.DB.WithContext(ctx).Model(&models.Barang{}).
			Where("deleted = FALSE AND status = ?", st).
			Count(dst).Error
	}

	if err := r.DB.WithContext(ctx).Model(&models.Barang{}).
		Where("deleted = FALSE").Count(&s.TotalBarang).Error; err != nil {
		return nil, err
	}
	if err := countStatus(models.StatusTersedia, &s.BarangTersedia); err != nil {
		return nil, err
	}
	if err := countStatus(models.StatusDipinjam, &s.BarangDipinjam); err != nil {
		return nil, err
	}
	if err := countStatus(models.StatusDirawat, &s.BarangDirawat); err != nil {
		return nil, err
	}

	// "rusak" dihitung dari kondisi, bukan status
	if err := r.DB.WithContext(ctx).Model(&models.Barang{}).
		Where("deleted = FALSE AND kondisi IN ?", []models.KondisiBarang{
			models.KondisiRusakRingan, models.KondisiRusakBerat,
		}).Count(&s.BarangRusak).Error; err != nil {
		return nil, err
	}

	var err error
	if s.PeminjamanAktif, err = r.CountPeminjamanAktif(ctx); err != nil {
		return nil, err
	}
	if s.PerawatanAktif, err = r.CountPerawatanAktif(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}
