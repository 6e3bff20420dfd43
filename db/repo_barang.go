package db

import (
	"context"
	"strings"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateBarang(ctx context.Context, b *models.Barang) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBarangByID(ctx context.Context, id string) (*models.Barang, error) {
	var b models.Barang
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND deleted = FALSE", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) SaveBarang(ctx context.Context, b *models.Barang) error {
	return r.DB.WithContext(ctx).Save(b).Error
}

func (r *Repo) DeleteBarang(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Model(&models.Barang{}).
		Where("id = ? AND deleted = FALSE", id).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type BarangQuery struct {
	Q      string // cari di kode/nama/merk/lokasi
	Status string // "", TERSEDIA, DIPINJAM, DIRAWAT
	Page   int
	Size   int
}

type PagedBarang struct {
	Total int64           `json:"total"`
	Items []models.Barang `json:"items"`
}

func (r *Repo) ListBarang(ctx context.Context, q BarangQuery) (*PagedBarang, error) {
	q.Page, q.Size = normalizePage(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Barang{}).Where("deleted = FALSE")
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(kode_barang) LIKE ? OR LOWER(nama_barang) LIKE ? OR LOWER(merk_type) LIKE ? OR LOWER(lokasi) LIKE ?",
			like, like, like, like)
	}
	if st := models.StatusBarang(q.Status); st.Valid() {
		tx = tx.Where("status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Barang
	if err := tx.Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedBarang{Total: total, Items: items}, nil
}

// ListAllBarang dipakai export laporan; tanpa paginasi, tanpa yang terhapus.
func (r *Repo) ListAllBarang(ctx context.Context) ([]models.Barang, error) {
	var items []models.Barang
	err := r.DB.WithContext(ctx).
		Where("deleted = FALSE").
		Order("kode_barang ASC").
		Find(&items).Error
	return items, err
}

type PagedPeminjaman struct {
	Total int64               `json:"total"`
	Items []models.Peminjaman `json:"items"`
}

type PagedPerawatan struct {
	Total int64              `json:"total"`
	Items []models.Perawatan `json:"items"`
}

// HistoryPeminjamanByBarang: riwayat pinjam satu barang, terbaru dulu.
func (r *Repo) HistoryPeminjamanByBarang(ctx context.Context, barangID string, page, size int) (*PagedPeminjaman, error) {
	page, size = normalizePage(page, size)

	sub := r.DB.Table(models.PeminjamanDetailTable).
		Select("peminjaman_id").
		Where("barang_id = ?", barangID)

	tx := r.DB.WithContext(ctx).Model(&models.Peminjaman{}).
		Where("id IN (?) AND deleted = FALSE", sub)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Peminjaman
	if err := tx.Preload("Details").Preload("Peminjam").
		Order("tgl_pinjam DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedPeminjaman{Total: total, Items: items}, nil
}

func (r *Repo) HistoryPerawatanByBarang(ctx context.Context, barangID string, page, size int) (*PagedPerawatan, error) {
	page, size = normalizePage(page, size)

	sub := r.DB.Table(models.PerawatanDetailTable).
		Select("perawatan_id").
		Where("barang_id = ?", barangID)

	tx := r.DB.WithContext(ctx).Model(&models.Perawatan{}).
		Where("id IN (?) AND deleted = FALSE", sub)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Perawatan
	if err := tx.Preload("Details").Preload("DiajukanOleh").
		Order("tgl_service DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedPerawatan{Total: total, Items: items}, nil
}
