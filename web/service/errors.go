package service

import "errors"

var (
	ErrEmptyCredentials  = errors.New("email and password are required")
	ErrEmailExists       = errors.New("email already exists")
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrEmptyMedicineName = errors.New("medicine name is required")
	ErrScanDisabled      = errors.New("barcode scanning is disabled")
	ErrNoBarcode         = errors.New("no barcode found in image")
	ErrUnsupportedImage  = errors.New("unsupported image")
)
