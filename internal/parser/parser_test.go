/*
File    : golox/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := diagnostics.New(&buf)
	toks := scanner.New(src, reporter).ScanTokens()
	stmts := New(toks, reporter).Parse()
	return stmts, reporter
}

func TestParser_VarDeclarationWithInitializer(t *testing.T) {
	stmts, rep := parse(t, `var a = 1 + 2;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)
	_, ok = v.Initializer.(*ast.Binary)
	assert.True(t, ok)
}

func TestParser_AssignmentReinterpretsVariableTarget(t *testing.T) {
	stmts, rep := parse(t, `a = 2;`)
	require.False(t, rep.HadError)
	es := stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParser_SetTargetFromGet(t *testing.T) {
	stmts, rep := parse(t, `a.b = 2;`)
	require.False(t, rep.HadError)
	es := stmts[0].(*ast.ExpressionStmt)
	set, ok := es.Expr.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetReportsError(t *testing.T) {
	_, rep := parse(t, `1 = 2;`)
	assert.True(t, rep.HadError)
}

func TestParser_ForLoopDesugarsToBlockAndWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)
	_, ok = outer.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	loop, ok := outer.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := loop.Body.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, body.Stmts, 2)
}

func TestParser_ForLoopWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, rep := parse(t, `for (;;) print 1;`)
	require.False(t, rep.HadError)
	outer := stmts[0].(*ast.WhileStmt)
	lit, ok := outer.Cond.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "true", lit.Value.String())
}

func TestParser_ClassDeclarationWithSuperclassAndMethods(t *testing.T) {
	stmts, rep := parse(t, `class B < A { init() { this.x = 1; } speak() { return 1; } }`)
	require.False(t, rep.HadError)
	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 2)
	assert.Equal(t, "init", cls.Methods[0].Name.Lexeme)
}

func TestParser_FunctionDeclarationParamsAndBody(t *testing.T) {
	stmts, rep := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, rep.HadError)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParser_CallAndGetChain(t *testing.T) {
	stmts, rep := parse(t, `a.b(1, 2).c;`)
	require.False(t, rep.HadError)
	es := stmts[0].(*ast.ExpressionStmt)
	get, ok := es.Expr.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParser_MissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	// The error is reported at the second `print`; synchronize consumes that
	// token first and then discards up to the next `;`, so `print 2;` is
	// lost and parsing resumes at `print 3;`.
	stmts, rep := parse(t, "print 1\nprint 2;\nprint 3;")
	assert.True(t, rep.HadError)
	require.Len(t, stmts, 2)
	assert.Nil(t, stmts[0])
	require.NotNil(t, stmts[1])
}

func TestParser_LogicalOperatorsPrecedence(t *testing.T) {
	stmts, rep := parse(t, `var a = true or false and false;`)
	require.False(t, rep.HadError)
	v := stmts[0].(*ast.VarStmt)
	logical, ok := v.Initializer.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, "or", string(logical.Op.Kind))
}

func TestParser_IfWithoutElse(t *testing.T) {
	stmts, rep := parse(t, `if (true) print 1;`)
	require.False(t, rep.HadError)
	ifs := stmts[0].(*ast.IfStmt)
	assert.Nil(t, ifs.Else)
}

func TestParser_ReturnWithoutValue(t *testing.T) {
	stmts, rep := parse(t, `fun f() { return; }`)
	require.False(t, rep.HadError)
	fn := stmts[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}
