package pbxproj

import "strings"

// Fingerprint identifies content an operation would add. The content counts
// as present when both substrings occur anywhere in the document; an empty
// Secondary is not checked.
type Fingerprint struct {
	Primary   string
	Secondary string
}

// Exists reports whether the fingerprinted content is already in doc.
func Exists(doc Document, fp Fingerprint) bool {
	if fp.Primary == "" || !strings.Contains(doc.text, fp.Primary) {
		return false
	}
	return fp.Secondary == "" || strings.Contains(doc.text, fp.Secondary)
}
