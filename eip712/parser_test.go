package eip712

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "Transaction(Person from,Person to,Asset tx)" +
	"Asset(address token,uint256 amount)" +
	"Person(address wallet,string name)"

func TestParsePropDef(t *testing.T) {
	p, err := ParsePropDef("uint256 foo")
	require.NoError(t, err)
	assert.Equal(t, "uint256", p.Type.Span)
	assert.Equal(t, "foo", p.Name)
	assert.Equal(t, "uint256 foo", p.String())

	p, err = ParsePropDef("(MyStruct[23],bool) bar")
	require.NoError(t, err)
	assert.Equal(t, "(MyStruct[23],bool)", p.Type.Span)
	require.NotNil(t, p.Type.Stem.Tuple)
	assert.Equal(t, "bar", p.Name)

	_, err = ParsePropDef("nospace")
	assert.Error(t, err)
	_, err = ParsePropDef("")
	assert.Error(t, err)
}

func TestParseComponentType(t *testing.T) {
	c, err := ParseComponentType("Transaction(Person from,Person to,Asset tx)")
	require.NoError(t, err)

	assert.Equal(t, "Transaction(Person from,Person to,Asset tx)", c.Span)
	assert.Equal(t, "Transaction", c.TypeName)
	require.Len(t, c.Props, 3)
	assert.Equal(t, "Person from", c.Props[0].String())
	assert.Equal(t, "Person to", c.Props[1].String())
	assert.Equal(t, "Asset tx", c.Props[2].String())
	assert.Equal(t, "Transaction(Person from,Person to,Asset tx)", c.String())
}

func TestParseComponentTypeSpan(t *testing.T) {
	// the span covers exactly the consumed prefix, not the rest of the
	// input
	c, err := ParseComponentType(example)
	require.NoError(t, err)
	assert.Equal(t, "Transaction(Person from,Person to,Asset tx)", c.Span)
}

func TestParseComponentTypeNestedTuple(t *testing.T) {
	c, err := ParseComponentType("Order((address,uint256)[2] legs,bytes data)")
	require.NoError(t, err)
	require.Len(t, c.Props, 2)
	assert.Equal(t, "(address,uint256)[2]", c.Props[0].Type.Span)
	assert.Equal(t, "legs", c.Props[0].Name)
	assert.Equal(t, "data", c.Props[1].Name)
}

func TestParseComponentTypeErrors(t *testing.T) {
	// empty input, missing parenthesis, property without a name, and a
	// type the specifier parser rejects
	for _, s := range []string{
		"",
		"NoParens",
		"Empty()",
		"Bad(uint256)",
		"Bad(uint-2 a)",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseComponentType(s)
			assert.Error(t, err)
		})
	}
}

func TestParseEncodeType(t *testing.T) {
	e := ParseEncodeType(example)
	require.Len(t, e.Types, 3)
	assert.Equal(t, "Transaction", e.Types[0].TypeName)
	assert.Equal(t, "Asset", e.Types[1].TypeName)
	assert.Equal(t, "Person", e.Types[2].TypeName)

	// each entry matches the corresponding standalone parse
	for _, c := range e.Types {
		standalone, err := ParseComponentType(c.Span)
		require.NoError(t, err)
		assert.Equal(t, standalone, c)
	}

	assert.Equal(t, "Transaction", e.Primary().TypeName)
	assert.Equal(t, example, e.String())
}

// The sequence parser stops at the first remainder that does not parse
// instead of failing; this leniency is part of the contract.
func TestParseEncodeTypeLenientStop(t *testing.T) {
	e := ParseEncodeType(example + "trailing garbage")
	require.Len(t, e.Types, 3)
	assert.Equal(t, "Person", e.Types[2].TypeName)

	e = ParseEncodeType("")
	assert.Empty(t, e.Types)
	assert.Nil(t, e.Primary())

	e = ParseEncodeType("complete garbage")
	assert.Empty(t, e.Types)

	// an unterminated definition consumes through its last separator and
	// yields no properties; the unparsable remainder then ends the loop
	e = ParseEncodeType("Pair(address a,address b)Incomplete(")
	require.Len(t, e.Types, 2)
	assert.Equal(t, "Incomplete(", e.Types[1].Span)
	assert.Empty(t, e.Types[1].Props)
}
