package pbxproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExists(t *testing.T) {
	doc := NewDocument(fixture(t))
	tests := []struct {
		name string
		fp   Fingerprint
		want bool
	}{
		{"both present", Fingerprint{"/* SampleApp */ = {", "path = SampleApp;"}, true},
		{"primary only", Fingerprint{"/* SampleApp */ = {", "path = Missing;"}, false},
		{"secondary only", Fingerprint{"/* Missing */ = {", "path = SampleApp;"}, false},
		{"no secondary", Fingerprint{Primary: "isa = PBXNativeTarget;"}, true},
		{"empty", Fingerprint{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Exists(doc, tt.fp))
		})
	}
}

func TestSwiftPackageFingerprint(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/Tai-Kimura/SwiftJsonUI", "Tai-Kimura/SwiftJsonUI"},
		{"https://github.com/Tai-Kimura/SwiftJsonUI.git", "Tai-Kimura/SwiftJsonUI"},
		{"https://github.com/Tai-Kimura/SwiftJsonUI/", "Tai-Kimura/SwiftJsonUI"},
		{"Foo", "Foo"},
	}
	for _, tt := range tests {
		fp := SwiftPackage{Name: "SwiftJsonUI", RepositoryURL: tt.url}.Fingerprint()
		assert.Equal(t, "SwiftJsonUI", fp.Primary)
		assert.Equal(t, tt.want, fp.Secondary, tt.url)
	}
}
