package db

import (
	"context"
	"errors"
	"strings"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

var ErrNotFound = gorm.ErrRecordNotFound

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}

// Users

func (r *Repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Preload("Permissions").
		First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Preload("Permissions").
		Where("username = ? AND deleted = FALSE", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND deleted = FALSE", models.RoleAdmin).
		Count(&n).Error
	return n, err
}

func (r *Repo) ExistsUsername(ctx context.Context, username, excludeID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *Repo) ExistsEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&n).Error
	return n > 0, err
}

type ListUsersResult struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
}

// ListUsers: paginasi + kata kunci (username/nama/email).
func (r *Repo) ListUsers(ctx context.Context, q string, page, size int) (ListUsersResult, error) {
	page, size = normalizePage(page, size)

	tx := r.DB.WithContext(ctx).Model(&models.User{}).Where("deleted = FALSE")
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(username) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListUsersResult{}, err
	}

	var users []models.User
	if err := tx.Preload("Permissions").
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&users).Error; err != nil {
		return ListUsersResult{}, err
	}
	return ListUsersResult{Users: users, Total: total}, nil
}

// SaveUser menyimpan perubahan profil/akun beserta set permission barunya.
// Permissions diganti utuh: hapus yang lama, tulis yang baru, satu transaksi.
func (r *Repo) SaveUser(ctx context.Context, u *models.User, replacePermissions bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Save(u).Error; err != nil {
			return err
		}
		if !replacePermissions {
			return nil
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&models.Permission{}).Error; err != nil {
			return err
		}
		for i := range u.Permissions {
			u.Permissions[i].ID = 0
			u.Permissions[i].UserID = u.ID
		}
		if len(u.Permissions) == 0 {
			return nil
		}
		return tx.Create(&u.Permissions).Error
	})
}

// DeleteUser menonaktifkan user (soft delete) supaya jejak transaksinya utuh.
func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND deleted = FALSE", id).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) TouchUserLogin(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_login_at": gorm.Expr("NOW()"),
			"login_count":   gorm.Expr("COALESCE(login_count, 0) + 1"),
		}).Error
}

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
