package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// AddOnSelection is a named extra together with the surcharge that was in
// force when the line was priced. Orders keep these by value, never by
// reference, so old tickets stay accurate after the surcharge table changes.
type AddOnSelection struct {
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// AddOnList serializes selections into a single JSON column.
type AddOnList []AddOnSelection

func (l AddOnList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *AddOnList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("AddOnList: unsupported column type")
	}
}

// StringList holds the add-on names a customer picked for a cart line.
// The cart never stores amounts; surcharges are resolved at pricing time.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("StringList: unsupported column type")
	}
}

// AddOnsKey canonicalizes an add-on name set. Cart lines with the same
// menu item and the same key are merged instead of duplicated.
func AddOnsKey(names []string) string {
	key := make([]string, len(names))
	copy(key, names)
	sort.Strings(key)
	return strings.Join(key, "|")
}
