// Package pbxobject holds the ordered attribute maps used to build new
// pbxproj entries before they are rendered into text.
package pbxobject

type IterateActionType = int8

const (
	IterateActionContinue IterateActionType = iota
	IterateActionBreak
)

type ObjectItem = SliceItem

// Object keeps attributes in insertion order, which is the order the
// renderer writes them in.
type Object struct {
	*SliceMap
}

func NewObjectItem(key string, value interface{}) ObjectItem {
	return SliceItem{key, value}
}

func NewObject() Object {
	return Object{
		SliceMap: NewSliceMap(),
	}
}

func NewObjectWithData(items []ObjectItem) Object {
	o := NewObject()
	for _, item := range items {
		o.Set(item.key, item.data)
	}
	return o
}

func (o Object) IsEmpty() bool {
	return o.SliceMap == nil || o.Size() == 0
}

// GetString returns the value of key when it is a string, "" otherwise.
func (o Object) GetString(key string) string {
	if o.SliceMap == nil {
		return ""
	}
	value, _ := o.Get(key)
	s, _ := value.(string)
	return s
}

type ApplyFunc = func(key string, val interface{}) IterateActionType
type FilterFunc = func(key string, val interface{}) bool

// ForeachWithFilter calls apply for every non-nil attribute accepted by
// filter, in insertion order, until apply asks to break.
func (o Object) ForeachWithFilter(apply ApplyFunc, filter FilterFunc) {
	if o.IsEmpty() {
		return
	}
	for _, item := range o.items {
		if item.data == nil || !filter(item.key, item.data) {
			continue
		}
		if apply(item.key, item.data) == IterateActionBreak {
			break
		}
	}
}
