package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorseKondisi(t *testing.T) {
	require.Equal(t, KondisiRusakRingan, WorseKondisi(KondisiBaik, KondisiRusakRingan))
	require.Equal(t, KondisiRusakRingan, WorseKondisi(KondisiRusakRingan, KondisiBaik))
	require.Equal(t, KondisiRusakBerat, WorseKondisi(KondisiRusakBerat, KondisiRusakRingan))
	require.Equal(t, KondisiHilang, WorseKondisi(KondisiRusakBerat, KondisiHilang))
	require.Equal(t, KondisiBaik, WorseKondisi(KondisiBaik, KondisiBaik))
}

func TestNormalizeKondisiKembali(t *testing.T) {
	k, ok := NormalizeKondisiKembali("KURANG_BAIK")
	require.True(t, ok)
	require.Equal(t, KondisiRusakRingan, k)

	k, ok = NormalizeKondisiKembali("BAIK")
	require.True(t, ok)
	require.Equal(t, KondisiBaik, k)

	_, ok = NormalizeKondisiKembali("LUMAYAN")
	require.False(t, ok)

	_, ok = NormalizeKondisiKembali("")
	require.False(t, ok)
}

func TestStatusBarangValid(t *testing.T) {
	require.True(t, StatusTersedia.Valid())
	require.True(t, StatusDipinjam.Valid())
	require.True(t, StatusDirawat.Valid())
	require.False(t, StatusBarang("DIJUAL").Valid())
}
