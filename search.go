package mudir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterItems returns the items of a collection whose stringified value for
// ANY schema field contains the query as a case-insensitive substring.
// An empty query returns all items in their original storage order.
func FilterItems(collection Collection, query string) []Item {
	if query == "" {
		return append([]Item(nil), collection.Data...)
	}

	needle := strings.ToLower(query)
	var matched []Item
	for _, item := range collection.Data {
		for _, field := range collection.Schema {
			value, ok := item.Values[field.Key]
			if !ok || value == nil {
				continue
			}
			if strings.Contains(strings.ToLower(stringifyValue(value)), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// stringifyValue renders a field value the way the list screens display it.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
