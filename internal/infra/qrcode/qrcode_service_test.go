package qrcode

import (
	"encoding/json"
	"testing"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVendorAddress = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultQRCodeSize, svc.size)

	svc = NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"},
	}).(*qrcodeService)
	assert.Equal(t, 512, svc.size)
}

func TestQRCodeService_GenerateVendorQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateVendorQR("coffee-cart", testVendorAddress)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseVendorQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	valid, err := json.Marshal(service.VendorQRCode{VendorName: "coffee-cart", Address: testVendorAddress, Type: "vendor"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(service.VendorQRCode{VendorName: "coffee-cart", Address: testVendorAddress, Type: "subscription"})
	require.NoError(t, err)
	missingAddress, err := json.Marshal(service.VendorQRCode{VendorName: "coffee-cart", Type: "vendor"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid payload", string(valid), ""},
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"invalid type", string(wrongType), "invalid QR code type"},
		{"missing address", string(missingAddress), "missing vendor name or address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := svc.ParseVendorQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "coffee-cart", parsed.VendorName)
			assert.Equal(t, testVendorAddress, parsed.Address)
		})
	}
}
