package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func userWith(role Role, perms ...Permission) *User {
	return &User{ID: "u-1", Username: "tester", Role: role, Permissions: perms}
}

func TestHasAccess(t *testing.T) {
	u := userWith(RolePetugas,
		Permission{Menu: MenuLaporan, SubMenu: "Peminjaman"},
		Permission{Menu: MenuTransaksi, SubMenu: "Peminjaman Barang"},
	)

	require.True(t, u.HasAccess(MenuLaporan))
	require.True(t, u.HasAccess(MenuTransaksi))
	require.False(t, u.HasAccess(MenuSystem))
	require.False(t, u.HasAccess(MenuInformasi))
}

func TestHasSubAccess(t *testing.T) {
	u := userWith(RolePetugas, Permission{Menu: MenuLaporan, SubMenu: "Peminjaman"})

	require.True(t, u.HasSubAccess(MenuLaporan, "Peminjaman"))
	require.False(t, u.HasSubAccess(MenuLaporan, "Perawatan"))
	require.False(t, u.HasSubAccess(MenuTransaksi, "Peminjaman"))
}

func TestAdminSelaluBoleh(t *testing.T) {
	u := userWith(RoleAdmin)

	require.True(t, u.HasAccess(MenuSystem))
	require.True(t, u.HasSubAccess(MenuLaporan, "Apapun"))
}

func TestTanpaPermission(t *testing.T) {
	u := userWith(RoleViewer)

	require.False(t, u.HasAccess(MenuLaporan))
	require.Empty(t, u.PermissionKeys())
}

func TestParsePermissionKey(t *testing.T) {
	p, ok := ParsePermissionKey("LAPORAN:Peminjaman")
	require.True(t, ok)
	require.Equal(t, MenuLaporan, p.Menu)
	require.Equal(t, "Peminjaman", p.SubMenu)
	require.Equal(t, "LAPORAN:Peminjaman", p.Key())

	// sub-menu boleh mengandung ':'
	p, ok = ParsePermissionKey("INFORMASI:Peta:Gudang")
	require.True(t, ok)
	require.Equal(t, "Peta:Gudang", p.SubMenu)

	for _, bad := range []string{"", "LAPORAN", "LAPORAN:", ":Peminjaman"} {
		_, ok := ParsePermissionKey(bad)
		require.False(t, ok, "key %q", bad)
	}
}
