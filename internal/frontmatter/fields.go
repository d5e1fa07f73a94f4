package frontmatter

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Fields holds frontmatter keys in insertion order. Setting an existing key
// overwrites its value in place.
type Fields = orderedmap.OrderedMap[string, any]

// NewFields returns an empty field set.
func NewFields() *Fields {
	return orderedmap.New[string, any]()
}

// Keys returns the keys of f in order.
func Keys(f *Fields) []string {
	keys := make([]string, 0, f.Len())
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
