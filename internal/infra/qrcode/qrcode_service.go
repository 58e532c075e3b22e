package qrcode

import (
	"strings"

	"booknow/config"
	"booknow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	minSize = 64
	maxSize = 2048
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "medium"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	return &qrcodeService{
		size:                 min(max(size, minSize), maxSize),
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReferralQR renders the referral share link as a PNG
func (s *qrcodeService) GenerateReferralQR(link string) ([]byte, error) {
	if strings.TrimSpace(link) == "" {
		return nil, errors.New("referral link is empty")
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
