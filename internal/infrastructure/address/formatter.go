package address

import (
	"fmt"
	"strings"

	"github.com/xssnick/tonutils-go/address"

	"ton_portfolio/internal/app/port"
)

const (
	UnknownAddress     = "Adresse inconnue"
	InvalidAddress     = "Adresse invalide"
	UnavailableAddress = "Adresse non disponible"
)

// Formatter renders TON addresses in the short user-friendly form used on the page.
type Formatter struct {
	logger port.Logger
}

// NewFormatter creates a Formatter that reports parse failures to logger.
func NewFormatter(logger port.Logger) *Formatter {
	return &Formatter{logger: logger}
}

// Canonical parses a raw ("0:<hex>") or user-friendly address and returns
// its bounceable mainnet user-friendly string, whatever flags the input carried.
func Canonical(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", fmt.Errorf("empty address")
	}

	var (
		parsed *address.Address
		err    error
	)
	if strings.Contains(addr, ":") {
		parsed, err = address.ParseRawAddr(addr)
	} else {
		parsed, err = address.ParseAddr(addr)
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse address %q: %w", addr, err)
	}
	return parsed.Bounce(true).Testnet(false).String(), nil
}

// Shorten keeps the first and last four characters of s.
func Shorten(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// Format returns the shortened canonical form of addr.
// Empty and unparsable addresses render as placeholders instead of failing.
func (f *Formatter) Format(addr string) string {
	if addr == "" {
		return UnknownAddress
	}
	canonical, err := Canonical(addr)
	if err != nil {
		if f.logger != nil {
			f.logger.Error("Failed to format address", "address", addr, "error", err)
		}
		return InvalidAddress
	}
	return Shorten(canonical)
}

// FormatContract formats a token contract address, which may be absent.
func (f *Formatter) FormatContract(addr string) string {
	if addr == "" {
		return UnavailableAddress
	}
	return f.Format(addr)
}
