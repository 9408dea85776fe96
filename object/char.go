package object

// Char holds a character literal exactly as it appeared in the source,
// quotes included.
type Char struct {
	value string
}

// NewChar returns a Char holding the literal text.
func NewChar(value string) *Char {
	return &Char{value: value}
}

func (c *Char) Type() Type {
	return CHAR
}

func (c *Char) Value() string {
	return c.value
}

func (c *Char) Inspect() string {
	return c.value
}

func (c *Char) String() string {
	return c.value
}

func (c *Char) Interface() interface{} {
	return c.value
}

func (c *Char) Equals(other Object) bool {
	o, ok := other.(*Char)
	return ok && o.value == c.value
}
