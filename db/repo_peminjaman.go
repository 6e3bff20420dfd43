package db

import (
	"context"
	"time"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockBarang mengunci baris barang (FOR UPDATE) sehingga dua transaksi yang
// menyentuh barang sama berjalan berurutan; yang kalah akan melihat status
// yang sudah berubah dan gagal di prasyarat.
func lockBarang(tx *gorm.DB, ids []string) ([]*models.Barang, error) {
	var rows []models.Barang
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Barang, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]*models.Barang, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id]) // nil kalau tidak ada; logika domain yang menolak
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func saveBarangTransisi(tx *gorm.DB, b *models.Barang, prior models.StatusBarang) error {
	// guard kondisional: baris harus masih di status sebelumnya
	res := tx.Model(&models.Barang{}).
		Where("id = ? AND status = ?", b.ID, prior).
		Updates(map[string]interface{}{"status": b.Status, "kondisi": b.Kondisi})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PinjamBarang: satu transaksi = kunci semua barang -> validasi & bentuk
// peminjaman -> ubah status barang -> simpan transaksi + detail.
func (r *Repo) PinjamBarang(ctx context.Context, peminjamID string, barangIDs []string, in models.PinjamInput) (*models.Peminjaman, error) {
	barangIDs = dedupe(barangIDs)

	var created *models.Peminjaman
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := lockBarang(tx, barangIDs)
		if err != nil {
			return err
		}

		p, err := models.NewPeminjaman(peminjamID, rows, in, time.Now().UTC())
		if err != nil {
			return err
		}

		for _, b := range rows {
			if err := saveBarangTransisi(tx, b, models.StatusTersedia); err != nil {
				return err
			}
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindPeminjamanByID(ctx, created.ID)
}

// KembalikanBarang menyelesaikan peminjaman dan memulangkan semua barangnya.
func (r *Repo) KembalikanBarang(ctx context.Context, loanID string, in models.KembaliInput) (*models.Peminjaman, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Peminjaman
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND deleted = FALSE", loanID).
			First(&p).Error; err != nil {
			return err
		}
		if err := tx.Where("peminjaman_id = ?", p.ID).Find(&p.Details).Error; err != nil {
			return err
		}

		ids := make([]string, 0, len(p.Details))
		for _, d := range p.Details {
			ids = append(ids, d.BarangID)
		}
		rows, err := lockBarang(tx, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]*models.Barang, len(rows))
		for _, b := range rows {
			if b != nil {
				byID[b.ID] = b
			}
		}

		if err := p.Kembalikan(byID, in, time.Now().UTC()); err != nil {
			return err
		}

		for _, b := range byID {
			if err := saveBarangTransisi(tx, b, models.StatusDipinjam); err != nil {
				return err
			}
		}
		for i := range p.Details {
			if err := tx.Save(&p.Details[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Details").Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindPeminjamanByID(ctx, loanID)
}

func (r *Repo) FindPeminjamanByID(ctx context.Context, id string) (*models.Peminjaman, error) {
	var p models.Peminjaman
	if err := r.DB.WithContext(ctx).
		Preload("Details.Barang").Preload("Peminjam").
		Where("id = ? AND deleted = FALSE", id).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type PeminjamanQuery struct {
	Status string // "", DIPINJAM, SELESAI
	Page   int
	Size   int
}

func (r *Repo) ListPeminjaman(ctx context.Context, q PeminjamanQuery) (*PagedPeminjaman, error) {
	q.Page, q.Size = normalizePage(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Peminjaman{}).Where("deleted = FALSE")
	switch models.StatusPeminjaman(q.Status) {
	case models.PeminjamanDipinjam, models.PeminjamanSelesai:
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Peminjaman
	if err := tx.Preload("Details.Barang").Preload("Peminjam").
		Order("tgl_pinjam DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedPeminjaman{Total: total, Items: items}, nil
}

func (r *Repo) CountPeminjamanAktif(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Peminjaman{}).
		Where("status = ? AND deleted = FALSE", models.PeminjamanDipinjam).
		Count(&n).Error
	return n, err
}
