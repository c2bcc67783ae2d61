package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	idPrefix         = "BK"
	idSuffixLen      = 6
	idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// IDGenerator produces booking identifiers of the form
// BK-<base36 unix millis>-<random suffix>. The timestamp component keeps
// identifiers roughly sortable by creation time; the suffix disambiguates
// requests landing in the same millisecond.
type IDGenerator interface {
	NewID() string
}

type bookingIDGenerator struct {
	now func() time.Time
}

func NewIDGenerator() IDGenerator {
	return &bookingIDGenerator{now: time.Now}
}

func (g *bookingIDGenerator) NewID() string {
	var sb strings.Builder
	sb.WriteString(idPrefix)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 36))
	sb.WriteByte('-')
	sb.WriteString(randomSuffix(idSuffixLen))
	return sb.String()
}

func randomSuffix(n int) string {
	max := big.NewInt(int64(len(idSuffixAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand read failures are not recoverable here; fall back
			// to a fixed character rather than panic in the request path.
			b[i] = 'x'
			continue
		}
		b[i] = idSuffixAlphabet[idx.Int64()]
	}
	return string(b)
}
