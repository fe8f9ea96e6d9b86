package bitunix

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rustyeddy/tradejournal/config"
)

// Canonicalize renders params as key+value pairs in ascending key order with
// no separators. The server rebuilds the same string to check the signature,
// so the result must not depend on map iteration order.
func Canonicalize(params map[string]string) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(params)) {
		b.WriteString(k)
		b.WriteString(params[k])
	}
	return b.String()
}

// Sign is the two-pass digest Bitunix expects:
// hex(sha256(hex(sha256(message)) + secret)).
func Sign(message, secret string) string {
	d1 := sha256.Sum256([]byte(message))
	d2 := sha256.Sum256([]byte(hex.EncodeToString(d1[:]) + secret))
	return hex.EncodeToString(d2[:])
}

// SignedRequest is everything a signed call puts on the wire.
type SignedRequest struct {
	Params    map[string]string // includes timestamp and sign
	Nonce     string
	Timestamp string
	Signature string
}

// Signer signs requests with one API key pair. It can only be built from
// present credentials.
type Signer struct {
	apiKey    string
	secretKey string

	now   func() time.Time
	nonce func() string
}

func NewSigner(c config.APICredentials) *Signer {
	return &Signer{
		apiKey:    c.APIKey,
		secretKey: c.SecretKey,
		now:       time.Now,
		nonce:     newNonce,
	}
}

// APIKey is sent in the api-key header.
func (s *Signer) APIKey() string {
	return s.apiKey
}

// Sign stamps params with the current millisecond timestamp, signs
// nonce + timestamp + apiKey + Canonicalize(params) + body and returns the
// stamped params with sign added. params itself is not modified.
func (s *Signer) Sign(params map[string]string, body string) SignedRequest {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	nonce := s.nonce()

	p := make(map[string]string, len(params)+2)
	maps.Copy(p, params)
	p["timestamp"] = ts

	sig := Sign(nonce+ts+s.apiKey+Canonicalize(p)+body, s.secretKey)
	p["sign"] = sig

	return SignedRequest{
		Params:    p,
		Nonce:     nonce,
		Timestamp: ts,
		Signature: sig,
	}
}

// newNonce returns 128 random bits as 32 hex characters.
func newNonce() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
