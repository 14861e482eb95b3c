package pbxproj

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/soapywu/pbxpatch/pbxobject"
)

const COMMENT_KEY_SUFFIX = "_comment"

func isObject(obj interface{}) bool {
	_, ok := obj.(pbxobject.Object)
	return ok
}

func toObject(obj interface{}) pbxobject.Object {
	return obj.(pbxobject.Object)
}

func isArray(obj interface{}) bool {
	switch obj.(type) {
	case []interface{}, []string, []CommentValue:
		return true
	}
	return false
}

// toArray normalizes the list types builders use.
func toArray(obj interface{}) []interface{} {
	switch v := obj.(type) {
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []CommentValue:
		out := make([]interface{}, len(v))
		for i, c := range v {
			out[i] = c
		}
		return out
	}
	return nil
}

func isString(obj interface{}) bool {
	_, ok := obj.(string)
	return ok
}

func toString(obj interface{}) string {
	return obj.(string)
}

func isInt(obj interface{}) bool {
	switch obj.(type) {
	case int, int8, int16, int32, int64:
		return true
	}
	return false
}

func toIntString(obj interface{}) string {
	switch obj.(type) {
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(obj).Int(), 10)
	}
	return ""
}

func toCommentKey(key string) string {
	return key + COMMENT_KEY_SUFFIX
}

func isCommentKey(key string) bool {
	return strings.HasSuffix(key, COMMENT_KEY_SUFFIX)
}

func nonCommentsFilter(key string, _ interface{}) bool {
	return !isCommentKey(key)
}
