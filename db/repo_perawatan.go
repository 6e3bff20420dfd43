package db

import (
	"context"
	"time"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AjukanPerawatan membuka tiket perawatan dalam satu transaksi, pola yang
// sama dengan PinjamBarang.
func (r *Repo) AjukanPerawatan(ctx context.Context, diajukanOlehID string, barangIDs []string, in models.AjukanPerawatanInput) (*models.Perawatan, error) {
	barangIDs = dedupe(barangIDs)

	var created *models.Perawatan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := lockBarang(tx, barangIDs)
		if err != nil {
			return err
		}

		w, err := models.NewPerawatan(diajukanOlehID, rows, in, time.Now().UTC())
		if err != nil {
			return err
		}

		for _, b := range rows {
			if err := saveBarangTransisi(tx, b, models.StatusTersedia); err != nil {
				return err
			}
		}
		if err := tx.Create(w).Error; err != nil {
			return err
		}
		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindPerawatanByID(ctx, created.ID)
}

func (r *Repo) SelesaikanPerawatan(ctx context.Context, ticketID string, in models.SelesaiPerawatanInput) (*models.Perawatan, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w models.Perawatan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND deleted = FALSE", ticketID).
			First(&w).Error; err != nil {
			return err
		}
		if err := tx.Where("perawatan_id = ?", w.ID).Find(&w.Details).Error; err != nil {
			return err
		}

		ids := make([]string, 0, len(w.Details))
		for _, d := range w.Details {
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

		if err := w.Selesaikan(byID, in, time.Now().UTC()); err != nil {
			return err
		}

		for _, b := range byID {
			if err := saveBarangTransisi(tx, b, models.StatusDirawat); err != nil {
				return err
			}
		}
		for i := range w.Details {
			if err := tx.Save(&w.Details[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Details").Save(&w).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindPerawatanByID(ctx, ticketID)
}

func (r *Repo) FindPerawatanByID(ctx context.Context, id string) (*models.Perawatan, error) {
	var w models.Perawatan
	if err := r.DB.WithContext(ctx).
		Preload("Details.Barang").Preload("DiajukanOleh").
		Where("id = ? AND deleted = FALSE", id).
		First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

type PerawatanQuery struct {
	Status string // "", PERAWATAN, SELESAI
	Page   int
	Size   int
}

func (r *Repo) ListPerawatan(ctx context.Context, q PerawatanQuery) (*PagedPerawatan, error) {
	q.Page, q.Size = normalizePage(q.Page, q.Size)

	tx := r.DB.WithContext(ctx).Model(&models.Perawatan{}).Where("deleted = FALSE")
	switch models.StatusPerawatan(q.Status) {
	case models.PerawatanBerjalan, models.PerawatanSelesai:
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Perawatan
	if err := tx.Preload("Details.Barang").Preload("DiajukanOleh").
		Order("tgl_service DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedPerawatan{Total: total, Items: items}, nil
}

func (r *Repo) CountPerawatanAktif(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Perawatan{}).
		Where("status = ? AND deleted = FALSE", models.PerawatanBerjalan).
		Count(&n).Error
	return n, err
}
