package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPerawatan(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	b := newBarang(KondisiRusakRingan, StatusTersedia)

	w, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:                 "Servis rutin AC",
		PenanggungJawabName: "CV Teknik Jaya",
		Gejala:              map[string]string{b.ID: "tidak dingin"},
	}, now)
	require.NoError(t, err)

	require.Equal(t, PerawatanBerjalan, w.Status)
	require.True(t, strings.HasPrefix(w.NoRegister, "PRW-2025-"))
	require.Len(t, w.Details, 1)
	require.Equal(t, "tidak dingin", w.Details[0].Gejala)
	require.Equal(t, StatusDirawat, b.Status)
}

func TestNewPerawatanValidasi(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiBaik, StatusTersedia)

	_, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Gejala: map[string]string{b.ID: "x"},
	}, now)
	require.Equal(t, ErrValidation, Code(err))
	require.Equal(t, "hal", Subject(err))

	// gejala wajib per barang
	_, err = NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{Hal: "servis"}, now)
	require.Equal(t, ErrMissingGejala, Code(err))
	require.Equal(t, b.ID, Subject(err))
	require.Equal(t, StatusTersedia, b.Status)
}

func TestNewPerawatanBarangSedangDirawat(t *testing.T) {
	b := newBarang(KondisiRusakBerat, StatusDirawat)

	_, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:    "servis ulang",
		Gejala: map[string]string{b.ID: "masih rusak"},
	}, time.Now())
	require.Equal(t, ErrInMaintenance, Code(err))
}

func TestNewPerawatanBarangDipinjam(t *testing.T) {
	b := newBarang(KondisiBaik, StatusDipinjam)

	_, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:    "servis",
		Gejala: map[string]string{b.ID: "x"},
	}, time.Now())
	require.Equal(t, ErrNotAvailable, Code(err))
}

func TestSelesaikan(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	b := newBarang(KondisiRusakBerat, StatusTersedia)

	w, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:    "perbaikan mesin",
		Gejala: map[string]string{b.ID: "mesin mati total"},
	}, now)
	require.NoError(t, err)

	garansi := now.AddDate(0, 6, 0)
	selesai := now.Add(72 * time.Hour)
	err = w.Selesaikan(map[string]*Barang{b.ID: b}, SelesaiPerawatanInput{
		Resolusi: map[string]Resolusi{
			b.ID: {Perbaikan: "ganti dinamo", Garansi: &garansi, KondisiKembali: KondisiBaik},
		},
	}, selesai)
	require.NoError(t, err)

	require.Equal(t, PerawatanSelesai, w.Status)
	require.Equal(t, selesai, *w.TglSelesaiAktual)
	require.Equal(t, "ganti dinamo", w.Details[0].Perbaikan)
	require.Equal(t, garansi, *w.Details[0].Garansi)

	// perawatan boleh memperbaiki kondisi tercatat
	require.Equal(t, StatusTersedia, b.Status)
	require.Equal(t, KondisiBaik, b.Kondisi)
}

func TestSelesaikanPerbaikanWajib(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiRusakRingan, StatusTersedia)

	w, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:    "servis",
		Gejala: map[string]string{b.ID: "x"},
	}, now)
	require.NoError(t, err)

	err = w.Selesaikan(map[string]*Barang{b.ID: b}, SelesaiPerawatanInput{
		Resolusi: map[string]Resolusi{b.ID: {KondisiKembali: KondisiBaik}},
	}, now)
	require.Equal(t, ErrValidation, Code(err))

	err = w.Selesaikan(map[string]*Barang{b.ID: b}, SelesaiPerawatanInput{}, now)
	require.Equal(t, ErrMissingResolusi, Code(err))
	require.Equal(t, b.ID, Subject(err))

	// gagal validasi tidak memutasi apa pun
	require.Equal(t, PerawatanBerjalan, w.Status)
	require.Equal(t, StatusDirawat, b.Status)
}

func TestSelesaikanDuaKali(t *testing.T) {
	now := time.Now()
	b := newBarang(KondisiRusakRingan, StatusTersedia)

	w, err := NewPerawatan("user-1", []*Barang{b}, AjukanPerawatanInput{
		Hal:    "servis",
		Gejala: map[string]string{b.ID: "x"},
	}, now)
	require.NoError(t, err)

	in := SelesaiPerawatanInput{
		Resolusi: map[string]Resolusi{b.ID: {Perbaikan: "ok", KondisiKembali: KondisiBaik}},
	}
	require.NoError(t, w.Selesaikan(map[string]*Barang{b.ID: b}, in, now))

	err = w.Selesaikan(map[string]*Barang{b.ID: b}, in, now)
	require.Equal(t, ErrAlreadySelesai, Code(err))
}
