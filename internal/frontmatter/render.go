package frontmatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Render formats fields as a frontmatter block ending in a newline. Empty
// fields render as "".
func Render(fields *Fields) string {
	if fields == nil || fields.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(Delimiter)
	sb.WriteString("\n")
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(pair.Key)
		sb.WriteString(": ")
		sb.WriteString(FormatValue(pair.Value))
		sb.WriteString("\n")
	}
	sb.WriteString(Delimiter)
	sb.WriteString("\n")
	return sb.String()
}

// FormatValue renders a single frontmatter value. Strings are double quoted,
// booleans and numbers are bare, arrays are bracketed and anything else is
// JSON encoded.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		items := make([]string, len(val))
		for i, s := range val {
			items[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = FormatValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return strconv.Quote(fmt.Sprint(val))
		}
		return string(data)
	}
}
