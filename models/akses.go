package models

import "strings"

// Menu utama aplikasi; sub-menu disimpan sebagai teks bebas mengikuti layar UI.
type Menu string

const (
	MenuTransaksi Menu = "TRANSAKSI"
	MenuLaporan   Menu = "LAPORAN"
	MenuInformasi Menu = "INFORMASI"
	MenuSystem    Menu = "SYSTEM"
)

// Permission adalah hak akses satu layar: pasangan (menu, subMenu).
// Bentuk kawat lama "MENU:SubMenu" hanya dipakai di boundary API.
type Permission struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	UserID  string `gorm:"type:uuid;index;not null" json:"-"`
	Menu    Menu   `gorm:"size:30;not null" json:"menu"`
	SubMenu string `gorm:"size:60;not null" json:"subMenu"`
}

func (Permission) TableName() string { return PermissionTable }

func (p Permission) Key() string { return string(p.Menu) + ":" + p.SubMenu }

// ParsePermissionKey memecah "MENU:SubMenu"; sub-menu boleh mengandung ':'.
func ParsePermissionKey(key string) (Permission, bool) {
	menu, sub, ok := strings.Cut(key, ":")
	if !ok || menu == "" || sub == "" {
		return Permission{}, false
	}
	return Permission{Menu: Menu(menu), SubMenu: sub}, true
}

// HasAccess melapor apakah user boleh melihat sebuah menu (sub-menu apa pun).
// ADMIN selalu boleh. Dievaluasi ulang setiap render, tidak ada cache.
func (u *User) HasAccess(menu Menu) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p.Menu == menu {
			return true
		}
	}
	return false
}

// HasSubAccess melapor apakah user boleh membuka satu layar spesifik.
func (u *User) HasSubAccess(menu Menu, subMenu string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p.Menu == menu && p.SubMenu == subMenu {
			return true
		}
	}
	return false
}

// PermissionKeys menghasilkan bentuk kawat untuk response login/user.
func (u *User) PermissionKeys() []string {
	keys := make([]string, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		keys = append(keys, p.Key())
	}
	return keys
}
