package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const PeminjamanTable = "smap_peminjaman"
const PeminjamanDetailTable = "smap_peminjaman_detail"

type StatusPeminjaman string

const (
	PeminjamanDipinjam StatusPeminjaman = "DIPINJAM"
	PeminjamanSelesai  StatusPeminjaman = "SELESAI"
)

type Peminjaman struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	NoRegister string `gorm:"size:30;uniqueIndex;not null" json:"noRegister"`

	PeminjamID string `gorm:"type:uuid;index;not null" json:"peminjamId"`
	Peminjam   *User  `gorm:"foreignKey:PeminjamID" json:"peminjam,omitempty"`

	// snapshot penanggung jawab saat pengajuan; tidak merujuk tabel user
	PenanggungJawabName    string `gorm:"size:255" json:"penanggungJawabName,omitempty"`
	PenanggungJawabNIP     string `gorm:"size:30" json:"penanggungJawabNip,omitempty"`
	PenanggungJawabJabatan string `gorm:"size:120" json:"penanggungJawabJabatan,omitempty"`

	Keperluan  string `gorm:"size:255;not null" json:"keperluan"`
	Keterangan string `gorm:"type:text" json:"keterangan,omitempty"`

	TglPinjam         time.Time  `gorm:"not null" json:"tglPinjam"`
	TglKembaliRencana *time.Time `json:"tglKembaliRencana,omitempty"`
	TglKembaliAktual  *time.Time `json:"tglKembaliAktual,omitempty"`

	Status         StatusPeminjaman `gorm:"size:20;not null;index" json:"status"`
	BeritaAcaraURL string           `gorm:"size:500" json:"beritaAcaraUrl,omitempty"`

	Details []PeminjamanDetail `gorm:"foreignKey:PeminjamanID;constraint:OnDelete:CASCADE" json:"details"`

	Deleted bool `gorm:"not null;default:false;index" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PeminjamanDetail struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PeminjamanID string `gorm:"type:uuid;index;not null" json:"-"`
	BarangID     string `gorm:"type:uuid;index;not null" json:"barangId"`
	Barang       *Barang `gorm:"foreignKey:BarangID" json:"barang,omitempty"`

	KondisiPinjam  KondisiBarang  `gorm:"size:20;not null" json:"kondisiPinjam"`
	KondisiKembali *KondisiBarang `gorm:"size:20" json:"kondisiKembali,omitempty"`
	Keterangan     string         `gorm:"type:text" json:"keterangan,omitempty"`
}

func (Peminjaman) TableName() string       { return PeminjamanTable }
func (PeminjamanDetail) TableName() string { return PeminjamanDetailTable }

type PinjamInput struct {
	Keperluan              string
	Keterangan             string
	TglKembaliRencana      *time.Time
	PenanggungJawabName    string
	PenanggungJawabNIP     string
	PenanggungJawabJabatan string
}

func newRegisterNo(prefix string, now time.Time) string {
	id := uuid.NewString()
	return prefix + "-" + now.Format("2006") + "-" + strings.ToUpper(id[:8])
}

// NewPeminjaman membangun transaksi pinjam baru dan memindahkan setiap barang
// ke status DIPINJAM. Semua prasyarat divalidasi dulu; kalau satu barang saja
// gagal, tidak ada yang dimutasi.
func NewPeminjaman(peminjamID string, barang []*Barang, in PinjamInput, now time.Time) (*Peminjaman, error) {
	if strings.TrimSpace(in.Keperluan) == "" {
		return nil, makeErr(ErrValidation, "keperluan")
	}
	if len(barang) == 0 {
		return nil, makeErr(ErrValidation, "barangIds")
	}
	for _, b := range barang {
		if b == nil || b.Deleted {
			return nil, makeErr(ErrBarangNotFound, barangSubject(b))
		}
		if b.Status != StatusTersedia {
			return nil, makeErr(ErrNotAvailable, b.ID)
		}
	}

	p := &Peminjaman{
		ID:                     uuid.NewString(),
		NoRegister:             newRegisterNo("PMJ", now),
		PeminjamID:             peminjamID,
		PenanggungJawabName:    in.PenanggungJawabName,
		PenanggungJawabNIP:     in.PenanggungJawabNIP,
		PenanggungJawabJabatan: in.PenanggungJawabJabatan,
		Keperluan:              in.Keperluan,
		Keterangan:             in.Keterangan,
		TglPinjam:              now,
		TglKembaliRencana:      in.TglKembaliRencana,
		Status:                 PeminjamanDipinjam,
	}
	for _, b := range barang {
		p.Details = append(p.Details, PeminjamanDetail{
			PeminjamanID:  p.ID,
			BarangID:      b.ID,
			KondisiPinjam: b.Kondisi,
		})
		b.Status = StatusDipinjam
	}
	return p, nil
}

type KembaliInput struct {
	// kondisi kembali per barang id, wajib lengkap untuk semua detail
	Kondisi        map[string]KondisiBarang
	Keterangan     string
	BeritaAcaraURL string
}

// Kembalikan menyelesaikan peminjaman: setiap detail diberi kondisi kembali,
// barang kembali TERSEDIA dengan kondisi terburuk antara kondisi tercatat dan
// laporan pengembalian. Peminjaman yang sudah SELESAI ditolak.
func (p *Peminjaman) Kembalikan(barang map[string]*Barang, in KembaliInput, now time.Time) error {
	if p.Status == PeminjamanSelesai {
		return makeErr(ErrAlreadySelesai, p.NoRegister)
	}
	for i := range p.Details {
		d := &p.Details[i]
		k, ok := in.Kondisi[d.BarangID]
		if !ok {
			return makeErr(ErrMissingKondisi, d.BarangID)
		}
		if !k.Valid() {
			return makeErr(ErrValidation, "kondisiKembali["+d.BarangID+"]")
		}
		if barang[d.BarangID] == nil {
			return makeErr(ErrBarangNotFound, d.BarangID)
		}
	}

	for i := range p.Details {
		d := &p.Details[i]
		k := in.Kondisi[d.BarangID]
		d.KondisiKembali = &k

		b := barang[d.BarangID]
		b.Status = StatusTersedia
		b.Kondisi = WorseKondisi(b.Kondisi, k)
	}

	p.Status = PeminjamanSelesai
	p.TglKembaliAktual = &now
	if in.BeritaAcaraURL != "" {
		p.BeritaAcaraURL = in.BeritaAcaraURL
	}
	if strings.TrimSpace(in.Keterangan) != "" {
		if p.Keterangan != "" {
			p.Keterangan += " | Pengembalian: " + in.Keterangan
		} else {
			p.Keterangan = "Pengembalian: " + in.Keterangan
		}
	}
	return nil
}

func barangSubject(b *Barang) string {
	if b == nil {
		return ""
	}
	return b.ID
}
