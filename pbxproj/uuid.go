package pbxproj

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/gofrs/uuid"
)

// IDLength is the length of an object identifier in a project file.
const IDLength = 24

var idPattern = regexp.MustCompile(`\b[0-9A-F]{24}\b`)

// IDGenerator hands out identifiers that collide neither with the ones
// already in a document nor with each other.
type IDGenerator struct {
	used   map[string]struct{}
	source func() (uuid.UUID, error)
}

// NewIDGenerator seeds a generator with every identifier-shaped token of doc.
func NewIDGenerator(doc Document) *IDGenerator {
	used := make(map[string]struct{})
	for _, id := range idPattern.FindAllString(doc.text, -1) {
		used[id] = struct{}{}
	}
	return &IDGenerator{used: used, source: uuid.NewV4}
}

// Next returns a fresh 24 character upper case hex identifier.
func (g *IDGenerator) Next() (string, error) {
	for {
		u, err := g.source()
		if err != nil {
			return "", fmt.Errorf("generating identifier: %w", err)
		}
		// bytes 6 and 8 carry the version and variant bits
		raw := make([]byte, 0, IDLength/2)
		raw = append(raw, u[0:6]...)
		raw = append(raw, u[10:16]...)
		id := strings.ToUpper(hex.EncodeToString(raw))
		if _, found := g.used[id]; found {
			continue
		}
		g.used[id] = struct{}{}
		return id, nil
	}
}
