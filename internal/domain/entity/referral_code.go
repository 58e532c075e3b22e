package entity

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultReferralCodePrefix is prepended to every generated code.
	DefaultReferralCodePrefix = "BN"

	// ReferralCodeLength is the full code length including the prefix.
	ReferralCodeLength = 8

	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var referralCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// NewReferralCode generates a random code of ReferralCodeLength characters starting with prefix.
func NewReferralCode(prefix string) (string, error) {
	prefix = strings.ToUpper(prefix)
	if len(prefix) >= ReferralCodeLength {
		return "", errors.Errorf("referral code prefix %q too long", prefix)
	}

	var b strings.Builder
	b.Grow(ReferralCodeLength)
	b.WriteString(prefix)

	alphabetLen := big.NewInt(int64(len(referralCodeAlphabet)))
	for b.Len() < ReferralCodeLength {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		b.WriteByte(referralCodeAlphabet[n.Int64()])
	}

	return b.String(), nil
}

// NormalizeReferralCode trims and uppercases user input. Codes are accepted case-insensitively.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsWellFormedReferralCode reports whether an already normalized code has the expected shape.
func IsWellFormedReferralCode(code, prefix string) bool {
	return referralCodePattern.MatchString(code) && strings.HasPrefix(code, strings.ToUpper(prefix))
}
