package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"
)

func TestTokenRoundTrip(t *testing.T) {
	u := &models.User{ID: "u-1", Username: "admin", Role: models.RoleAdmin}

	tok, err := IssueToken("rahasia", u, "sess-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("rahasia", tok)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, models.RoleAdmin, claims.Role)
	require.Equal(t, "sess-1", claims.SessionID)
}

func TestTokenSecretSalah(t *testing.T) {
	u := &models.User{ID: "u-1", Username: "admin", Role: models.RoleAdmin}

	tok, err := IssueToken("rahasia", u, "sess-1", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("bukan-rahasia", tok)
	require.Error(t, err)
}

func TestTokenKedaluwarsa(t *testing.T) {
	u := &models.User{ID: "u-1", Username: "admin", Role: models.RolePeminjam}

	tok, err := IssueToken("rahasia", u, "sess-1", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("rahasia", tok)
	require.Error(t, err)
}
