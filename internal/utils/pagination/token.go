package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
)

const (
	// DefaultLimit applies when a list request does not set one.
	DefaultLimit = 20
	// MaxLimit caps a single page.
	MaxLimit = 100

	dateFormat = "2006-01-02"
)

// Cursor marks the last row of a page for lists ordered by date descending, then id.
type Cursor struct {
	Date time.Time
	ID   string
}

// EncodeToken turns a cursor into an opaque URL-safe token.
func EncodeToken(c Cursor) string {
	raw := c.Date.Format(dateFormat) + "|" + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a token produced by EncodeToken.
// Malformed tokens are reported as validation errors.
func DecodeToken(token string) (Cursor, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (base64 decode)", apperrors.ErrValidation)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (date parse)", apperrors.ErrValidation)
	}
	return Cursor{Date: date, ID: parts[1]}, nil
}

// ClampLimit applies DefaultLimit to non-positive values and caps at MaxLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
