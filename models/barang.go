package models

import "time"

const BarangTable = "smap_barang"

// KondisiBarang diurutkan dari paling ringan ke paling berat.
type KondisiBarang string

const (
	KondisiBaik        KondisiBarang = "BAIK"
	KondisiRusakRingan KondisiBarang = "RUSAK_RINGAN"
	KondisiRusakBerat  KondisiBarang = "RUSAK_BERAT"
	KondisiHilang      KondisiBarang = "HILANG"
)

func (k KondisiBarang) Valid() bool {
	switch k {
	case KondisiBaik, KondisiRusakRingan, KondisiRusakBerat, KondisiHilang:
		return true
	}
	return false
}

func (k KondisiBarang) severity() int {
	switch k {
	case KondisiBaik:
		return 0
	case KondisiRusakRingan:
		return 1
	case KondisiRusakBerat:
		return 2
	case KondisiHilang:
		return 3
	}
	return -1
}

// WorseKondisi memilih kondisi yang lebih parah. Kondisi barang tidak pernah
// membaik diam-diam saat pengembalian.
func WorseKondisi(a, b KondisiBarang) KondisiBarang {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// NormalizeKondisiKembali menerima nilai layar service lama: "KURANG_BAIK"
// dipetakan ke RUSAK_RINGAN, sisanya harus nilai enum kondisi biasa.
func NormalizeKondisiKembali(s string) (KondisiBarang, bool) {
	if s == "KURANG_BAIK" {
		return KondisiRusakRingan, true
	}
	k := KondisiBarang(s)
	return k, k.Valid()
}

type StatusBarang string

const (
	StatusTersedia StatusBarang = "TERSEDIA"
	StatusDipinjam StatusBarang = "DIPINJAM"
	StatusDirawat  StatusBarang = "DIRAWAT"
)

func (s StatusBarang) Valid() bool {
	switch s {
	case StatusTersedia, StatusDipinjam, StatusDirawat:
		return true
	}
	return false
}

type Barang struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	KodeBarang string `gorm:"size:60;not null;index" json:"kodeBarang"`
	NUP        string `gorm:"size:30" json:"nup,omitempty"`
	NamaBarang string `gorm:"size:200;not null" json:"namaBarang"`
	MerkType   string `gorm:"size:120" json:"merkType,omitempty"`
	Ukuran     string `gorm:"size:60" json:"ukuran,omitempty"`
	JenisBarang string `gorm:"size:60" json:"jenisBarang,omitempty"`

	Gudang    string    `gorm:"size:120" json:"gudang,omitempty"`
	Lokasi    string    `gorm:"size:200" json:"lokasi,omitempty"`
	Koordinat Koordinat `gorm:"type:text" json:"koordinat"`

	Kondisi KondisiBarang `gorm:"size:20;not null" json:"kondisi"`
	Status  StatusBarang  `gorm:"size:20;not null;default:'TERSEDIA';index" json:"status"`

	TglPerolehan *time.Time `json:"tglPerolehan,omitempty"`
	TglSurat     *time.Time `json:"tglSurat,omitempty"`

	PhotoURL         string `gorm:"size:500" json:"photoUrl,omitempty"`
	BuktiKepemilikan string `gorm:"size:200" json:"buktiKepemilikan,omitempty"`
	BarcodeProduk    string `gorm:"size:120" json:"barcodeProduk,omitempty"`
	BarcodeSN        string `gorm:"size:120" json:"barcodeSn,omitempty"`
	Nopol            string `gorm:"size:20" json:"nopol,omitempty"`
	Pemakai          string `gorm:"size:120" json:"pemakai,omitempty"`

	Keterangan string `gorm:"type:text" json:"keterangan,omitempty"`

	Deleted bool `gorm:"not null;default:false;index" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Barang) TableName() string { return BarangTable }
