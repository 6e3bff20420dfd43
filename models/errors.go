package models

import "errors"

// ErrCode dipakai controller untuk memetakan error bisnis ke status HTTP.
type ErrCode string

const (
	ErrValidation      ErrCode = "VALIDATION"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrBarangNotFound  ErrCode = "BARANG_NOT_FOUND"
	ErrNotAvailable    ErrCode = "BARANG_NOT_AVAILABLE"
	ErrInMaintenance   ErrCode = "BARANG_IN_MAINTENANCE"
	ErrAlreadySelesai  ErrCode = "ALREADY_SELESAI"
	ErrMissingKondisi  ErrCode = "MISSING_KONDISI_KEMBALI"
	ErrMissingGejala   ErrCode = "MISSING_GEJALA"
	ErrMissingResolusi ErrCode = "MISSING_RESOLUSI"
)

type codedError struct {
	code    ErrCode
	subject string // barang id / nama field yang bermasalah, boleh kosong
}

func (e codedError) Error() string {
	if e.subject == "" {
		return string(e.code)
	}
	return string(e.code) + ": " + e.subject
}
func (e codedError) Code() ErrCode   { return e.code }
func (e codedError) Subject() string { return e.subject }

func makeErr(c ErrCode, subject string) error { return codedError{code: c, subject: subject} }

// Code extracts the business error code, "" if err is not a coded error.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Subject returns the offending barang id or field name.
func Subject(err error) string {
	var se interface{ Subject() string }
	if errors.As(err, &se) {
		return se.Subject()
	}
	return ""
}
