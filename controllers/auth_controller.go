package controllers

import (
	"net/http"
	"strings"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct{ *Srv }

func GetAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := ac.Repo.FindUserByUsername(c.Request.Context(), in.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "username atau password salah"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "username atau password salah"})
		return
	}

	sessionID := uuid.NewString()
	if err := ac.Sess.Create(c.Request.Context(), sessionID, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	token, err := app.IssueToken(ac.Cfg.JWTSecret, u, sessionID, ac.Cfg.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	_ = ac.Repo.TouchUserLogin(c.Request.Context(), u.ID) // tidak memblokir login

	c.JSON(http.StatusOK, app.H{
		"token":       token,
		"type":        "Bearer",
		"id":          u.ID,
		"username":    u.Username,
		"name":        u.Name,
		"role":        u.Role,
		"nip":         u.NIP,
		"jabatan":     u.Jabatan,
		"bidang":      u.Bidang,
		"permissions": u.PermissionKeys(),
	})
}

// POST /auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if v, ok := c.Get("sessionID"); ok {
		if sid, _ := v.(string); sid != "" {
			_ = ac.Sess.Delete(c.Request.Context(), sid)
		}
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u := app.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u, "permissions": u.PermissionKeys()})
}

type profileReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"` // opsional, min 6 kalau diisi
	NIP      string `json:"nip"`
	Jabatan  string `json:"jabatan"`
	Bidang   string `json:"bidang"`
}

// PUT /auth/me: user mengubah datanya sendiri, role tidak bisa diubah di sini.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	u := app.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	var in profileReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if taken, err := ac.Repo.ExistsEmail(c.Request.Context(), in.Email, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	} else if taken {
		c.JSON(http.StatusConflict, app.H{"error": "email sudah terdaftar"})
		return
	}

	u.Name = in.Name
	u.Email = in.Email
	u.NIP = in.NIP
	u.Jabatan = in.Jabatan
	u.Bidang = in.Bidang
	if pw := strings.TrimSpace(in.Password); pw != "" {
		if len(pw) < 6 {
			c.JSON(http.StatusBadRequest, app.H{"error": "password minimal 6 karakter"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
			return
		}
		u.Password = string(hashed)
	}

	if err := ac.Repo.SaveUser(c.Request.Context(), u, false); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}
