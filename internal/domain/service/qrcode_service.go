package service

// QRCodeService renders referral share links as QR codes.
type QRCodeService interface {
	// GenerateReferralQR returns a PNG encoding link.
	GenerateReferralQR(link string) ([]byte, error)
}
