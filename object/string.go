package object

import "strings"

// String holds text. Values created from string literals keep their
// surrounding double quotes; values read by the input builtin have none.
type String struct {
	value string
}

// NewString returns a String holding value verbatim.
func NewString(value string) *String {
	return &String{value: value}
}

func (s *String) Type() Type {
	return STRING
}

// Value returns the text as held, including any surrounding quotes.
func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	return s.value
}

// String returns the text with its surrounding quotes removed.
func (s *String) String() string {
	return Unquote(s.value)
}

func (s *String) Interface() interface{} {
	return s.String()
}

func (s *String) Equals(other Object) bool {
	o, ok := other.(*String)
	return ok && o.value == s.value
}

// Unquote strips one pair of surrounding double quotes. Text that does not
// both begin and end with a double quote is returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
