package grid

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration.
const (
	domainConfig = "flowgrid/config/v1"
	domainLevel  = "flowgrid/level/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ConfigHash is the content-addressed identity of a rotation
// configuration. The solver keys its visited set on this, so two paths
// reaching the same orientation of every rotatable tile collapse into
// one search node.
func ConfigHash(tiles []Tile) string {
	return hashWithDomain(domainConfig, CanonicalConfig(tiles))
}

// LevelID is the content-addressed identity of a hand-authored level.
// Stable across process restarts given the same name, size and tiles.
// Generated levels get a random UUID instead; their content is not
// reproducible, so content addressing buys nothing there.
func LevelID(name string, gridSize int, tiles []Tile) string {
	return hashWithDomain(domainLevel, CanonicalLevel(name, gridSize, tiles))
}
