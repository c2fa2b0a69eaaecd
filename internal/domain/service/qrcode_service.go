package service

// VendorQRCode is the payload encoded in a vendor QR code
type VendorQRCode struct {
	VendorName string `json:"vendor_name"`
	Address    string `json:"address"`
	Type       string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVendorQR generates a PNG QR code pointing at a vendor profile
	GenerateVendorQR(vendorName, address string) ([]byte, error)

	// ParseVendorQR parses QR code data back into its payload
	ParseVendorQR(qrData string) (*VendorQRCode, error)
}
