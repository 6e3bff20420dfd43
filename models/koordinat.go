package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Koordinat adalah posisi peta terstruktur. Kolom lama menyimpan teks
// "lat, lng"; parsing terjadi sekali di boundary lewat Scanner/Valuer.
type Koordinat struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func ParseKoordinat(s string) (Koordinat, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return Koordinat{}, fmt.Errorf("koordinat %q: butuh format \"lat, lng\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Koordinat{}, fmt.Errorf("koordinat %q: latitude tidak valid", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Koordinat{}, fmt.Errorf("koordinat %q: longitude tidak valid", s)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Koordinat{}, fmt.Errorf("koordinat %q: di luar jangkauan", s)
	}
	return Koordinat{Lat: lat, Lng: lng}, nil
}

func (k Koordinat) IsZero() bool { return k.Lat == 0 && k.Lng == 0 }

func (k Koordinat) String() string {
	return strconv.FormatFloat(k.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(k.Lng, 'f', -1, 64)
}

func (k Koordinat) Value() (driver.Value, error) {
	if k.IsZero() {
		return "", nil
	}
	return k.String(), nil
}

func (k *Koordinat) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*k = Koordinat{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("koordinat: tipe kolom %T tidak didukung", src)
	}
	if strings.TrimSpace(s) == "" {
		*k = Koordinat{}
		return nil
	}
	parsed, err := ParseKoordinat(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
