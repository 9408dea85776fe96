package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatting(t *testing.T) {
	tests := []struct {
		obj     Object
		str     string
		inspect string
	}{
		{NewInt(0), "0", "0"},
		{NewInt(7), "7", "7"},
		{NewInt(-12), "-12", "-12"},
		{NewDouble(7), "7.0000", "7.0000"},
		{NewDouble(5423.864213), "5423.8642", "5423.8642"},
		{NewString(`"abc"`), "abc", `"abc"`},
		{NewString("plain"), "plain", "plain"},
		{NewString(`""`), "", `""`},
		{NewChar("'c'"), "'c'", "'c'"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.str, tt.obj.String(), tt.inspect)
		require.Equal(t, tt.inspect, tt.obj.Inspect())
	}
}

func TestTypes(t *testing.T) {
	require.Equal(t, INT, NewInt(1).Type())
	require.Equal(t, DOUBLE, NewDouble(1).Type())
	require.Equal(t, STRING, NewString("").Type())
	require.Equal(t, CHAR, NewChar("'a'").Type())
	require.Equal(t, UNDEFINED, Undefined.Type())
}

func TestEquals(t *testing.T) {
	require.True(t, NewInt(3).Equals(NewInt(3)))
	require.False(t, NewInt(3).Equals(NewDouble(3)))
	require.True(t, NewDouble(1.5).Equals(NewDouble(1.5)))
	require.True(t, NewString(`"a"`).Equals(NewString(`"a"`)))
	require.False(t, NewString(`"a"`).Equals(NewString("a")))
	require.True(t, NewChar("'a'").Equals(NewChar("'a'")))
	require.True(t, Undefined.Equals(Undefined))
	require.True(t, IsUndefined(nil))
	require.True(t, IsUndefined(Undefined))
	require.False(t, IsUndefined(NewInt(0)))
}

func TestInterface(t *testing.T) {
	require.Equal(t, int64(4), NewInt(4).Interface())
	require.Equal(t, 2.5, NewDouble(2.5).Interface())
	require.Equal(t, "hi", NewString(`"hi"`).Interface())
	require.Equal(t, "'x'", NewChar("'x'").Interface())
	require.Nil(t, Undefined.Interface())
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "abc", Unquote(`"abc"`))
	require.Equal(t, "", Unquote(`""`))
	require.Equal(t, `"`, Unquote(`"`))
	require.Equal(t, `"abc`, Unquote(`"abc`))
	require.Equal(t, "abc", Unquote("abc"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Object
	}{
		{"42", NewInt(42)},
		{"0x1f", NewInt(31)},
		{"3.25", NewDouble(3.25)},
		{"hello", NewString("hello")},
		{"", NewString("")},
		{"-5", NewString("-5")},
		{"1.2.3", NewString("1.2.3")},
		{"99999999999999999999", NewString("99999999999999999999")},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Classify(tt.input), tt.input)
	}
}
