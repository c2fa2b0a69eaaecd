package qrcode

import (
	"encoding/json"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	vendorQRType       = "vendor"
	defaultQRCodeSize  = 256
	defaultRecoveryKey = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeServiceFromConfig creates the QR code service from configuration, falling back to defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	size, level := defaultQRCodeSize, defaultRecoveryKey
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	return NewQRCodeService(size, level)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVendorQR generates a PNG QR code for a vendor profile
func (s *qrcodeService) GenerateVendorQR(vendorName, address string) ([]byte, error) {
	data := service.VendorQRCode{
		VendorName: vendorName,
		Address:    address,
		Type:       vendorQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVendorQR parses scanned QR code data back into the vendor payload
func (s *qrcodeService) ParseVendorQR(qrData string) (*service.VendorQRCode, error) {
	var data service.VendorQRCode
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != vendorQRType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.VendorName == "" || data.Address == "" {
		return nil, errors.New("QR code is missing vendor name or address")
	}

	return &data, nil
}
