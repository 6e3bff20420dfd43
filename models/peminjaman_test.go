package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newBarang(kondisi KondisiBarang, status StatusBarang) *Barang {
	return &Barang{
		ID:         uuid.NewString(),
		KodeBarang: "3.05.01.04.002",
		NamaBarang: "Laptop Dinas",
		Kondisi:    kondisi,
		Status:     status,
	}
}

func TestNewPeminjaman(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	b1 := newBarang(KondisiBaik, StatusTersedia)
	b2 := newBarang(KondisiRusakRingan, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b1, b2}, PinjamInput{
		Keperluan:           "Rapat koordinasi lapangan",
		PenanggungJawabName: "Budi Santoso",
	}, now)
	require.NoError(t, err)

	require.Equal(t, PeminjamanDipinjam, p.Status)
	require.True(t, strings.HasPrefix(p.NoRegister, "PMJ-2025-"))
	require.Equal(t, "user-1", p.PeminjamID)
	require.Len(t, p.Details, 2)

	// kondisi saat pinjam di-snapshot per detail
	require.Equal(t, KondisiBaik, p.Details[0].KondisiPinjam)
	require.Equal(t, KondisiRusakRingan, p.Details[1].KondisiPinjam)

	require.Equal(t, StatusDipinjam, b1.Status)
	require.Equal(t, StatusDipinjam, b2.Status)
}

func TestNewPeminjamanValidasi(t *testing.T) {
	now := time.Now()

	_, err := NewPeminjaman("user-1", []*Barang{newBarang(KondisiBaik, StatusTersedia)}, PinjamInput{}, now)
	require.Equal(t, ErrValidation, Code(err))
	require.Equal(t, "keperluan", Subject(err))

	_, err = NewPeminjaman("user-1", nil, PinjamInput{Keperluan: "x"}, now)
	require.Equal(t, ErrValidation, Code(err))
}

func TestNewPeminjamanBarangTidakTersedia(t *testing.T) {
	now := time.Now()
	ok := newBarang(KondisiBaik, StatusTersedia)
	dipinjam := newBarang(KondisiBaik, StatusDipinjam)

	_, err := NewPeminjaman("user-1", []*Barang{ok, dipinjam}, PinjamInput{Keperluan: "x"}, now)
	require.Equal(t, ErrNotAvailable, Code(err))
	require.Equal(t, dipinjam.ID, Subject(err))

	// gagal total: barang yang valid tidak ikut berubah
	require.Equal(t, StatusTersedia, ok.Status)
}

func TestNewPeminjamanBarangTerhapus(t *testing.T) {
	b := newBarang(KondisiBaik, StatusTersedia)
	b.Deleted = true

	_, err := NewPeminjaman("user-1", []*Barang{b}, PinjamInput{Keperluan: "x"}, time.Now())
	require.Equal(t, ErrBarangNotFound, Code(err))
}

func TestKembalikan(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	b := newBarang(KondisiRusakRingan, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b}, PinjamInput{Keperluan: "x"}, now)
	require.NoError(t, err)

	kembali := now.Add(48 * time.Hour)
	err = p.Kembalikan(map[string]*Barang{b.ID: b}, KembaliInput{
		Kondisi:        map[string]KondisiBarang{b.ID: KondisiBaik},
		Keterangan:     "dikembalikan lengkap",
		BeritaAcaraURL: "https://files.example/ba-123.pdf",
	}, kembali)
	require.NoError(t, err)

	require.Equal(t, PeminjamanSelesai, p.Status)
	require.Equal(t, kembali, *p.TglKembaliAktual)
	require.Equal(t, "https://files.example/ba-123.pdf", p.BeritaAcaraURL)
	require.Equal(t, KondisiBaik, *p.Details[0].KondisiKembali)

	require.Equal(t, StatusTersedia, b.Status)
	// kondisi tercatat RUSAK_RINGAN tidak membaik hanya karena laporan BAIK
	require.Equal(t, KondisiRusakRingan, b.Kondisi)
}

func TestKembalikanKondisiMemburuk(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiBaik, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b}, PinjamInput{Keperluan: "x"}, now)
	require.NoError(t, err)

	err = p.Kembalikan(map[string]*Barang{b.ID: b}, KembaliInput{
		Kondisi: map[string]KondisiBarang{b.ID: KondisiRusakBerat},
	}, now)
	require.NoError(t, err)
	require.Equal(t, KondisiRusakBerat, b.Kondisi)
}

func TestKembalikanDuaKali(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiBaik, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b}, PinjamInput{Keperluan: "x"}, now)
	require.NoError(t, err)

	in := KembaliInput{Kondisi: map[string]KondisiBarang{b.ID: KondisiBaik}}
	require.NoError(t, p.Kembalikan(map[string]*Barang{b.ID: b}, in, now))

	err = p.Kembalikan(map[string]*Barang{b.ID: b}, in, now)
	require.Equal(t, ErrAlreadySelesai, Code(err))
}

func TestKembalikanKondisiKurang(t *testing.T) {
	now := time.Now()
	b1 := newBarang(KondisiBaik, StatusTersedia)
	b2 := newBarang(KondisiBaik, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b1, b2}, PinjamInput{Keperluan: "x"}, now)
	require.NoError(t, err)

	// hanya satu barang yang dilaporkan
	err = p.Kembalikan(map[string]*Barang{b1.ID: b1, b2.ID: b2}, KembaliInput{
		Kondisi: map[string]KondisiBarang{b1.ID: KondisiBaik},
	}, now)
	require.Equal(t, ErrMissingKondisi, Code(err))
	require.Equal(t, b2.ID, Subject(err))

	// tidak ada yang dimutasi
	require.Equal(t, PeminjamanDipinjam, p.Status)
	require.Equal(t, StatusDipinjam, b1.Status)
	require.Nil(t, p.Details[0].KondisiKembali)
}

func TestKembalikanKeteranganDigabung(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiBaik, StatusTersedia)

	p, err := NewPeminjaman("user-1", []*Barang{b}, PinjamInput{
		Keperluan:  "x",
		Keterangan: "catatan awal",
	}, now)
	require.NoError(t, err)

	err = p.Kembalikan(map[string]*Barang{b.ID: b}, KembaliInput{
		Kondisi:    map[string]KondisiBarang{b.ID: KondisiBaik},
		Keterangan: "tali hilang",
	}, now)
	require.NoError(t, err)
	require.Equal(t, "catatan awal | Pengembalian: tali hilang", p.Keterangan)
}
