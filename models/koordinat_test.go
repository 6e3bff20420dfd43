package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKoordinat(t *testing.T) {
	k, err := ParseKoordinat("-6.2088, 106.8456")
	require.NoError(t, err)
	require.Equal(t, Koordinat{Lat: -6.2088, Lng: 106.8456}, k)

	// tanpa spasi juga sah
	k, err = ParseKoordinat("-6.9,107.6")
	require.NoError(t, err)
	require.Equal(t, Koordinat{Lat: -6.9, Lng: 107.6}, k)

	for _, bad := range []string{"", "106.8456", "abc, def", "-91, 0", "0, 181"} {
		_, err := ParseKoordinat(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestKoordinatRoundTrip(t *testing.T) {
	k := Koordinat{Lat: -6.2088, Lng: 106.8456}

	parsed, err := ParseKoordinat(k.String())
	require.NoError(t, err)
	require.Equal(t, k, parsed)
}

func TestKoordinatScan(t *testing.T) {
	var k Koordinat
	require.NoError(t, k.Scan("-6.2088, 106.8456"))
	require.Equal(t, -6.2088, k.Lat)

	require.NoError(t, k.Scan([]byte("1, 2")))
	require.Equal(t, Koordinat{Lat: 1, Lng: 2}, k)

	require.NoError(t, k.Scan(nil))
	require.True(t, k.IsZero())

	require.NoError(t, k.Scan("  "))
	require.True(t, k.IsZero())

	require.Error(t, k.Scan(42))
	require.Error(t, k.Scan("bukan koordinat"))
}

func TestKoordinatValue(t *testing.T) {
	v, err := Koordinat{}.Value()
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = Koordinat{Lat: -6.9, Lng: 107.6}.Value()
	require.NoError(t, err)
	require.Equal(t, "-6.9, 107.6", v)
}
