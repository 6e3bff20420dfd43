package app

import (
	"net/http"
	"strings"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/db"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"
	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/session"

	"github.com/gin-gonic/gin"
)

// AuthRequired memvalidasi bearer token: tanda tangan JWT, sesi Redis masih
// hidup, dan user masih ada. User lengkap (termasuk permissions) ditaruh di
// context supaya guard menu tidak query ulang.
func AuthRequired(sess *session.Store, repo *db.Repo, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := strings.TrimSpace(c.GetHeader("Authorization"))
		if bearer == "" || !strings.EqualFold(bearer[:min(7, len(bearer))], "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		claims, err := ParseToken(cfg.JWTSecret, strings.TrimSpace(bearer[7:]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "token tidak valid"})
			return
		}
		if _, err := sess.Get(c.Request.Context(), claims.SessionID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "sesi berakhir"})
			return
		}

		u, err := repo.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil || u.Deleted {
			_ = sess.Delete(c.Request.Context(), claims.SessionID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		c.Set("user", u)
		c.Set("userID", u.ID)
		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}

// CurrentUser mengambil user yang dipasang AuthRequired.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		if u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// MenuRequired meloloskan ADMIN atau user dengan hak akses menu tersebut;
// kalau subMenu diberikan, layar spesifik itu yang harus diizinkan.
func MenuRequired(menu models.Menu, subMenu ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		allowed := false
		if len(subMenu) > 0 {
			allowed = u.HasSubAccess(menu, subMenu[0])
		} else {
			allowed = u.HasAccess(menu)
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "akses ditolak"})
			return
		}
		c.Next()
	}
}
