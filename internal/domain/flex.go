package domain

import (
	"encoding/json"
	"strings"
)

// NotFound is the placeholder substituted for any absent or malformed
// field throughout the assembled response.
const NotFound = "Not Found"

// Flex holds a scalar the upstream may encode as a JSON string, number,
// or bool. The literal form is kept so numeric ids survive untouched
// instead of being mangled through float64.
type Flex struct {
	value   string
	present bool
}

func NewFlex(v string) Flex {
	return Flex{value: v, present: true}
}

func (f *Flex) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch {
	case s == "null":
		return nil
	case s == "true":
		f.value = "True"
	case s == "false":
		f.value = "False"
	case len(s) >= 2 && s[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f.value = str
	default:
		f.value = s
	}
	f.present = true
	return nil
}

func (f Flex) Present() bool {
	return f.present
}

// Or returns the value, or def when the field was absent upstream.
func (f Flex) Or(def string) string {
	if !f.present {
		return def
	}
	return f.value
}

func (f Flex) String() string {
	return f.Or(NotFound)
}

// FlexList holds a list of scalars, keeping each element's literal form.
type FlexList struct {
	values  []string
	present bool
}

func (l *FlexList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var items []Flex
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.present = true
	l.values = make([]string, 0, len(items))
	for _, item := range items {
		l.values = append(l.values, item.value)
	}
	return nil
}

func (l FlexList) Present() bool {
	return l.present
}

func (l FlexList) Values() []string {
	return append([]string(nil), l.values...)
}

// String renders the list in bracketed form, or the Not Found sentinel
// when the field was absent upstream.
func (l FlexList) String() string {
	if !l.present {
		return NotFound
	}
	return "[" + strings.Join(l.values, ", ") + "]"
}
