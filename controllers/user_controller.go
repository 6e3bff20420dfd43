package controllers

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct{ *Srv }

func GetUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/users?q=&page=&size=
func (uc *UserController) ListUsers(c *gin.Context) {
	page, size := pageParams(c)
	res, err := uc.Repo.ListUsers(c.Request.Context(), c.Query("q"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"total": res.Total, "users": res.Users})
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid uuid"})
		return
	}
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil || u.Deleted {
		c.JSON(http.StatusNotFound, app.H{"error": "user tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}

type userReq struct {
	Username    string      `json:"username" binding:"required,min=3,max=50"`
	Email       string      `json:"email" binding:"required,email"`
	Name        string      `json:"name" binding:"required"`
	Password    string      `json:"password"` // kosong = default saat create, tidak berubah saat update
	Role        models.Role `json:"role" binding:"required"`
	NIP         string      `json:"nip"`
	Jabatan     string      `json:"jabatan"`
	Bidang      string      `json:"bidang"`
	Permissions []string    `json:"permissions"` // bentuk kawat "MENU:SubMenu"
}

func parsePermissions(keys []string) ([]models.Permission, string) {
	perms := make([]models.Permission, 0, len(keys))
	for _, k := range keys {
		p, ok := models.ParsePermissionKey(k)
		if !ok {
			return nil, k
		}
		perms = append(perms, p)
	}
	return perms, ""
}

// POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var in userReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !in.Role.Valid() {
		c.JSON(http.StatusBadRequest, app.H{"error": "role tidak dikenal", "subject": "role"})
		return
	}
	perms, bad := parsePermissions(in.Permissions)
	if bad != "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "hak akses tidak valid", "subject": bad})
		return
	}

	if taken, err := uc.Repo.ExistsUsername(c.Request.Context(), in.Username, ""); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	} else if taken {
		c.JSON(http.StatusConflict, app.H{"error": "username sudah terdaftar"})
		return
	}
	if taken, err := uc.Repo.ExistsEmail(c.Request.Context(), in.Email, ""); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	} else if taken {
		c.JSON(http.StatusConflict, app.H{"error": "email sudah terdaftar"})
		return
	}

	password := in.Password
	if password == "" {
		password = "password123" // akun baru wajib ganti; mengikuti perilaku lama
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	u := &models.User{
		ID:          uuid.NewString(),
		Username:    in.Username,
		Email:       in.Email,
		Name:        in.Name,
		Password:    string(hashed),
		Role:        in.Role,
		NIP:         in.NIP,
		Jabatan:     in.Jabatan,
		Bidang:      in.Bidang,
		Permissions: perms,
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"user": u})
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var in userReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !in.Role.Valid() {
		c.JSON(http.StatusBadRequest, app.H{"error": "role tidak dikenal", "subject": "role"})
		return
	}
	perms, bad := parsePermissions(in.Permissions)
	if bad != "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "hak akses tidak valid", "subject": bad})
		return
	}

	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil || u.Deleted {
		c.JSON(http.StatusNotFound, app.H{"error": "user tidak ditemukan"})
		return
	}

	if taken, err := uc.Repo.ExistsUsername(c.Request.Context(), in.Username, id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	} else if taken {
		c.JSON(http.StatusConflict, app.H{"error": "username sudah terdaftar"})
		return
	}
	if taken, err := uc.Repo.ExistsEmail(c.Request.Context(), in.Email, id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	} else if taken {
		c.JSON(http.StatusConflict, app.H{"error": "email sudah terdaftar"})
		return
	}

	u.Username = in.Username
	u.Email = in.Email
	u.Name = in.Name
	u.Role = in.Role
	u.NIP = in.NIP
	u.Jabatan = in.Jabatan
	u.Bidang = in.Bidang
	u.Permissions = perms
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
			return
		}
		u.Password = string(hashed)
	}

	if err := uc.Repo.SaveUser(c.Request.Context(), u, true); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	// tidak boleh menghapus diri sendiri, mencegah sistem terkunci
	if v, ok := c.Get("userID"); ok {
		if uid, _ := v.(string); uid == id {
			c.JSON(http.StatusBadRequest, app.H{"error": "tidak bisa menghapus akun sendiri"})
			return
		}
	}

	if err := uc.Repo.DeleteUser(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	// cabut semua sesi user yang dihapus supaya token lamanya mati
	_ = uc.Sess.RevokeAllForUser(c.Request.Context(), id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
