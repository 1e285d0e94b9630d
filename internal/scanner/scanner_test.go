/*
File    : golox/internal/scanner/scanner_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scanner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diagnostics.New(&buf)
	toks := New(src, r).ScanTokens()
	return toks, r
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, r := scanAll(t, "(){},.-+;*")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, r := scanAll(t, "!= == <= >= ! = < >")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Bang, token.Equal, token.Less, token.Greater, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, _ := scanAll(t, "123 45.67")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_NumberTrailingDotNotConsumed(t *testing.T) {
	toks, _ := scanAll(t, "1.")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, token.Dot, toks[1].Kind)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, r := scanAll(t, `"hello world"`)
	assert.False(t, r.HadError)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, r := scanAll(t, `"unterminated`)
	assert.True(t, r.HadError)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	toks, _ := scanAll(t, "class fun var x this super")
	assert.Equal(t, []token.Kind{
		token.Class, token.Fun, token.Var, token.Identifier, token.This,
		token.Super, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_LineCommentIgnored(t *testing.T) {
	toks, r := scanAll(t, "1 // a comment\n2")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_BlockCommentDoesNotNest(t *testing.T) {
	toks, r := scanAll(t, "/* outer /* inner */ 1 */")
	assert.False(t, r.HadError)
	// The first `*/` closes the comment, leaving "1 */" to be scanned.
	assert.Equal(t, []token.Kind{token.Number, token.Star, token.Slash, token.EOF}, kinds(toks))
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, r := scanAll(t, "/* never closes")
	assert.True(t, r.HadError)
}

func TestScanTokens_UnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, r := scanAll(t, "1 @ 2")
	assert.True(t, r.HadError)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestScanTokens_EOFLineMatchesNewlineCount(t *testing.T) {
	toks, _ := scanAll(t, "1\n2\n3")
	last := toks[len(toks)-1]
	assert.Equal(t, token.EOF, last.Kind)
	assert.Equal(t, 3, last.Line)
}

func TestScanTokens_EmptySourceEndsInEOFOnly(t *testing.T) {
	toks, r := scanAll(t, "")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{token.EOF}, kinds(toks))
	assert.Equal(t, 1, toks[0].Line)
}
