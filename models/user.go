package models

import "time"

const UserTable = "smap_users"
const PermissionTable = "smap_user_permissions"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RolePetugas  Role = "PETUGAS"
	RolePeminjam Role = "PEMINJAM"
	RoleViewer   Role = "VIEWER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePetugas, RolePeminjam, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:20;not null;default:'VIEWER'" json:"role"`

	NIP     string `gorm:"size:30" json:"nip,omitempty"`
	Jabatan string `gorm:"size:120" json:"jabatan,omitempty"`
	Bidang  string `gorm:"size:120" json:"bidang,omitempty"`

	// soft delete: user nonaktif tetap tersimpan untuk jejak transaksi
	Deleted bool `gorm:"not null;default:false;index" json:"-"`

	Permissions []Permission `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"permissions,omitempty"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
