package pbxobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(o Object) []string {
	var out []string
	o.ForeachWithFilter(func(key string, _ interface{}) IterateActionType {
		out = append(out, key)
		return IterateActionContinue
	}, func(string, interface{}) bool { return true })
	return out
}

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := NewObjectWithData([]ObjectItem{
		NewObjectItem("isa", "PBXGroup"),
		NewObjectItem("children", []interface{}{}),
		NewObjectItem("path", "View"),
		NewObjectItem("sourceTree", "<group>"),
	})

	assert.Equal(t, []string{"isa", "children", "path", "sourceTree"}, keys(obj))

	obj.Set("path", "Layouts")
	assert.Equal(t, []string{"isa", "children", "path", "sourceTree"}, keys(obj))
	assert.Equal(t, "Layouts", obj.GetString("path"))
	assert.Equal(t, 4, obj.Size())
}

func TestObjectGetString(t *testing.T) {
	obj := NewObject()
	obj.Set("buildActionMask", 2147483647)
	obj.Set("name", "Frameworks")

	assert.Equal(t, "Frameworks", obj.GetString("name"))
	assert.Equal(t, "", obj.GetString("buildActionMask"))
	assert.Equal(t, "", obj.GetString("missing"))
	assert.Equal(t, "", Object{}.GetString("name"))
	assert.True(t, Object{}.IsEmpty())
	assert.True(t, NewObject().IsEmpty())
}

func TestForeachWithFilterStopsOnBreak(t *testing.T) {
	obj := NewObject()
	obj.Set("isa", "PBXBuildFile")
	obj.Set("fileRef", "ABC")
	obj.Set("fileRef_comment", "Foo.swift")
	obj.Set("settings", "x")
	obj.Set("skipped", nil)

	var seen []string
	obj.ForeachWithFilter(func(key string, _ interface{}) IterateActionType {
		seen = append(seen, key)
		if key == "fileRef" {
			return IterateActionBreak
		}
		return IterateActionContinue
	}, func(key string, _ interface{}) bool {
		return key != "fileRef_comment"
	})
	assert.Equal(t, []string{"isa", "fileRef"}, seen)

	assert.Equal(t, []string{"isa", "fileRef", "fileRef_comment", "settings"}, keys(obj))
}
