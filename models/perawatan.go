package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const PerawatanTable = "smap_perawatan"
const PerawatanDetailTable = "smap_perawatan_detail"

type StatusPerawatan string

const (
	PerawatanBerjalan StatusPerawatan = "PERAWATAN"
	PerawatanSelesai  StatusPerawatan = "SELESAI"
)

type Perawatan struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	NoRegister string `gorm:"size:30;uniqueIndex;not null" json:"noRegister"`

	Hal string `gorm:"size:255;not null" json:"hal"`

	DiajukanOlehID string `gorm:"type:uuid;index;not null" json:"diajukanOlehId"`
	DiajukanOleh   *User  `gorm:"foreignKey:DiajukanOlehID" json:"diajukanOleh,omitempty"`

	// snapshot teknisi penanggung jawab
	PenanggungJawabName string `gorm:"size:255" json:"penanggungJawabName,omitempty"`
	PenanggungJawabNIP  string `gorm:"size:30" json:"penanggungJawabNip,omitempty"`

	Keterangan string `gorm:"type:text" json:"keterangan,omitempty"`

	TglService        time.Time  `gorm:"not null" json:"tglService"`
	TglSelesaiRencana *time.Time `json:"tglSelesaiRencana,omitempty"`
	TglSelesaiAktual  *time.Time `json:"tglSelesaiAktual,omitempty"`

	Status StatusPerawatan `gorm:"size:20;not null;index" json:"status"`

	Details []PerawatanDetail `gorm:"foreignKey:PerawatanID;constraint:OnDelete:CASCADE" json:"details"`

	Deleted bool `gorm:"not null;default:false;index" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PerawatanDetail struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PerawatanID string  `gorm:"type:uuid;index;not null" json:"-"`
	BarangID    string  `gorm:"type:uuid;index;not null" json:"barangId"`
	Barang      *Barang `gorm:"foreignKey:BarangID" json:"barang,omitempty"`

	Gejala         string         `gorm:"type:text;not null" json:"gejala"`
	Perbaikan      string         `gorm:"type:text" json:"perbaikan,omitempty"`
	Garansi        *time.Time     `json:"garansi,omitempty"`
	KondisiKembali *KondisiBarang `gorm:"size:20" json:"kondisiKembali,omitempty"`
	Keterangan     string         `gorm:"type:text" json:"keterangan,omitempty"`
}

func (Perawatan) TableName() string       { return PerawatanTable }
func (PerawatanDetail) TableName() string { return PerawatanDetailTable }

type AjukanPerawatanInput struct {
	Hal               string
	Keterangan        string
	TglSelesaiRencana *time.Time

	PenanggungJawabName string
	PenanggungJawabNIP  string

	// gejala per barang id, wajib untuk setiap barang yang diajukan
	Gejala map[string]string
}

// NewPerawatan membuka tiket perawatan dan memindahkan setiap barang ke
// DIRAWAT. Barang harus TERSEDIA: barang DIPINJAM harus dikembalikan dulu,
// tidak ada transisi langsung DIPINJAM -> DIRAWAT.
func NewPerawatan(diajukanOlehID string, barang []*Barang, in AjukanPerawatanInput, now time.Time) (*Perawatan, error) {
	if strings.TrimSpace(in.Hal) == "" {
		return nil, makeErr(ErrValidation, "hal")
	}
	if len(barang) == 0 {
		return nil, makeErr(ErrValidation, "barangIds")
	}
	for _, b := range barang {
		if b == nil || b.Deleted {
			return nil, makeErr(ErrBarangNotFound, barangSubject(b))
		}
		if b.Status == StatusDirawat {
			return nil, makeErr(ErrInMaintenance, b.ID)
		}
		if b.Status != StatusTersedia {
			return nil, makeErr(ErrNotAvailable, b.ID)
		}
		if strings.TrimSpace(in.Gejala[b.ID]) == "" {
			return nil, makeErr(ErrMissingGejala, b.ID)
		}
	}

	w := &Perawatan{
		ID:                  uuid.NewString(),
		NoRegister:          newRegisterNo("PRW", now),
		Hal:                 in.Hal,
		DiajukanOlehID:      diajukanOlehID,
		PenanggungJawabName: in.PenanggungJawabName,
		PenanggungJawabNIP:  in.PenanggungJawabNIP,
		Keterangan:          in.Keterangan,
		TglService:          now,
		TglSelesaiRencana:   in.TglSelesaiRencana,
		Status:              PerawatanBerjalan,
	}
	for _, b := range barang {
		w.Details = append(w.Details, PerawatanDetail{
			PerawatanID: w.ID,
			BarangID:    b.ID,
			Gejala:      in.Gejala[b.ID],
		})
		b.Status = StatusDirawat
	}
	return w, nil
}

// Resolusi adalah hasil perawatan satu barang.
type Resolusi struct {
	Perbaikan      string
	Garansi        *time.Time
	KondisiKembali KondisiBarang
}

type SelesaiPerawatanInput struct {
	// resolusi per barang id, wajib lengkap untuk semua detail
	Resolusi   map[string]Resolusi
	Keterangan string
}

// Selesaikan menutup tiket: setiap detail wajib punya perbaikan dan kondisi
// akhir, barang kembali TERSEDIA dengan kondisi sesuai laporan teknisi.
func (w *Perawatan) Selesaikan(barang map[string]*Barang, in SelesaiPerawatanInput, now time.Time) error {
	if w.Status == PerawatanSelesai {
		return makeErr(ErrAlreadySelesai, w.NoRegister)
	}
	for i := range w.Details {
		d := &w.Details[i]
		res, ok := in.Resolusi[d.BarangID]
		if !ok {
			return makeErr(ErrMissingResolusi, d.BarangID)
		}
		if strings.TrimSpace(res.Perbaikan) == "" {
			return makeErr(ErrValidation, "perbaikan["+d.BarangID+"]")
		}
		if !res.KondisiKembali.Valid() {
			return makeErr(ErrValidation, "kondisiKembali["+d.BarangID+"]")
		}
		if barang[d.BarangID] == nil {
			return makeErr(ErrBarangNotFound, d.BarangID)
		}
	}

	for i := range w.Details {
		d := &w.Details[i]
		res := in.Resolusi[d.BarangID]
		k := res.KondisiKembali
		d.Perbaikan = res.Perbaikan
		d.Garansi = res.Garansi
		d.KondisiKembali = &k

		b := barang[d.BarangID]
		b.Status = StatusTersedia
		b.Kondisi = k
	}

	w.Status = PerawatanSelesai
	w.TglSelesaiAktual = &now
	if strings.TrimSpace(in.Keterangan) != "" {
		if w.Keterangan != "" {
			w.Keterangan += " | Penyelesaian: " + in.Keterangan
		} else {
			w.Keterangan = "Penyelesaian: " + in.Keterangan
		}
	}
	return nil
}
