/*
File    : golox/internal/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

func tok(name string) token.Token {
	return token.New(token.Identifier, name, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Val: 10})
	v, err := env.Get(tok("x"))
	require.Nil(t, err)
	assert.Equal(t, value.Number{Val: 10}, v)
}

func TestEnvironment_GetUndefinedReportsError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(tok("missing"))
	require.NotNil(t, err)
	assert.Contains(t, err.Msg, "Undefined variable")
}

func TestEnvironment_GetSearchesEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := New(outer)
	v, err := inner.Get(tok("x"))
	require.Nil(t, err)
	assert.Equal(t, value.Number{Val: 1}, v)
}

func TestEnvironment_AssignUpdatesDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := New(outer)
	err := inner.Assign(tok("x"), value.Number{Val: 2})
	require.Nil(t, err)
	v, _ := outer.Get(tok("x"))
	assert.Equal(t, value.Number{Val: 2}, v)
}

func TestEnvironment_AssignUndefinedReportsError(t *testing.T) {
	env := New(nil)
	err := env.Assign(tok("missing"), value.Number{Val: 1})
	require.NotNil(t, err)
}

func TestEnvironment_GetAtAndAssignAtUseRecordedDepth(t *testing.T) {
	global := New(nil)
	block := New(global)
	leaf := New(block)
	block.Define("a", value.String{Val: "block"})

	assert.Equal(t, value.String{Val: "block"}, leaf.GetAt(1, "a"))

	leaf.AssignAt(1, tok("a"), value.String{Val: "changed"})
	assert.Equal(t, value.String{Val: "changed"}, block.GetAt(0, "a"))
}

func TestEnvironment_ShadowingDoesNotAffectOuterScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", value.Number{Val: 1})
	inner := New(outer)
	inner.Define("a", value.Number{Val: 2})

	innerVal, _ := inner.Get(tok("a"))
	outerVal, _ := outer.Get(tok("a"))
	assert.Equal(t, value.Number{Val: 2}, innerVal)
	assert.Equal(t, value.Number{Val: 1}, outerVal)
}
