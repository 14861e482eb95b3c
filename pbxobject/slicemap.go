package pbxobject

type SliceItem struct {
	key  string
	data interface{}
}

// SliceMap is a string keyed map that remembers insertion order.
type SliceMap struct {
	index map[string]int
	items []SliceItem
}

func NewSliceMap() *SliceMap {
	return &SliceMap{
		index: make(map[string]int),
	}
}

func (m *SliceMap) Get(key string) (interface{}, bool) {
	idx, found := m.index[key]
	if !found {
		return nil, false
	}
	return m.items[idx].data, true
}

// Set keeps the position of a key that is already present.
func (m *SliceMap) Set(key string, v interface{}) {
	if idx, found := m.index[key]; found {
		m.items[idx].data = v
		return
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, SliceItem{key: key, data: v})
}

func (m *SliceMap) Size() int {
	return len(m.items)
}
