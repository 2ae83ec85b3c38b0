package compiler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
)

func buildSource(t *testing.T, text string) (*Unit, *Diagnostics, error) {
	t.Helper()
	sources := NewSources()
	require.True(t, sources.Insert(NewSource("test.skald", text)))
	diags := NewDiagnostics()
	unit, err := Build(sources, WithDiagnostics(diags))
	return unit, diags, err
}

func TestBuildSimpleFunction(t *testing.T) {
	unit, diags, err := buildSource(t, `
pub fn add(a, b) {
    a + b
}
`)
	require.NoError(t, err)
	require.True(t, diags.IsEmpty())
	require.Equal(t, 1, unit.Len())

	fn, ok := unit.Lookup(hash.OfName("add"))
	require.True(t, ok)
	require.Equal(t, "add", fn.Name())
	require.Equal(t, 2, fn.Arity())
	require.True(t, fn.Public())
	require.GreaterOrEqual(t, fn.NumLocals(), 2)
}

func TestBuildPrivateFunction(t *testing.T) {
	unit, _, err := buildSource(t, `
fn helper() { 1 }
pub fn entry() { helper() }
`)
	require.NoError(t, err)
	require.Equal(t, 2, unit.Len())

	helper, ok := unit.Lookup(hash.OfName("helper"))
	require.True(t, ok)
	require.False(t, helper.Public())
}

func TestBuildLetAndLiterals(t *testing.T) {
	unit, _, err := buildSource(t, `
pub fn mixed() {
    let flag = true;
    let pi = 3.25;
    let ch = 'x';
    let s = "hi\n";
    let nothing = ();
    (flag, pi, ch, s, nothing)
}
`)
	require.NoError(t, err)
	fn, ok := unit.Lookup(hash.OfName("mixed"))
	require.True(t, ok)
	require.Equal(t, 0, fn.Arity())
	require.Equal(t, 5, fn.NumLocals())
}

func TestBuildUndefinedName(t *testing.T) {
	unit, diags, err := buildSource(t, `pub fn broken() { missing + 1 }`)
	require.Nil(t, unit)
	require.Error(t, err)
	require.True(t, diags.HasErrors())
	require.Contains(t, diags.Reports()[0].Message, `undefined name "missing"`)
}

func TestBuildSyntaxError(t *testing.T) {
	unit, diags, err := buildSource(t, `pub fn broken( { }`)
	require.Nil(t, unit)
	require.Error(t, err)
	require.True(t, diags.HasErrors())
	r := diags.Reports()[0]
	require.Equal(t, "test.skald", r.Source)
	require.Greater(t, r.Line, 0)
}

func TestBuildDuplicateFunction(t *testing.T) {
	sources := NewSources()
	sources.Insert(NewSource("a.skald", `pub fn run() { 1 }`))
	sources.Insert(NewSource("b.skald", `pub fn run() { 2 }`))
	diags := NewDiagnostics()
	unit, err := Build(sources, WithDiagnostics(diags))
	require.Nil(t, unit)
	require.Error(t, err)
	require.Contains(t, diags.Reports()[0].Message, "already defined in a.skald")
}

func TestBuildMultipleSources(t *testing.T) {
	sources := NewSources()
	sources.Insert(NewSource("lib.skald", `pub fn double(n) { n * 2 }`))
	sources.Insert(NewSource("main.skald", `pub fn main() { double(21) }`))
	unit, err := Build(sources)
	require.NoError(t, err)
	require.Equal(t, 2, unit.Len())

	fns := unit.Functions()
	require.Equal(t, "double", fns[0].Name())
	require.Equal(t, "main", fns[1].Name())
}

func TestBuildNoSources(t *testing.T) {
	_, err := Build(NewSources())
	require.Error(t, err)
	_, err = Build(nil)
	require.Error(t, err)
}

func TestSourceValidation(t *testing.T) {
	require.Nil(t, NewSource("bad\xffname", "pub fn x() { 1 }"))
	require.Nil(t, NewSource("name", "bad \xff content"))

	src := NewSource("ok.skald", "")
	require.NotNil(t, src)
	require.Equal(t, "ok.skald", src.Name())
	require.False(t, src.ID().IsNil())

	other := NewSource("ok.skald", "")
	require.NotEqual(t, src.ID(), other.ID())

	sources := NewSources()
	require.False(t, sources.Insert(nil))
	require.True(t, sources.Insert(src))
	require.Equal(t, 1, sources.Len())
	require.Same(t, src, sources.Get(0))
	require.Nil(t, sources.Get(1))
}

func TestDiagnosticsEmit(t *testing.T) {
	_, diags, err := buildSource(t, `pub fn broken() { missing }`)
	require.Error(t, err)

	var buf bytes.Buffer
	stream := errz.NewStream(&buf, errz.ColorNever)
	require.True(t, diags.Emit(stream))
	require.Contains(t, buf.String(), "error: test.skald:")
	require.Contains(t, buf.String(), "undefined name")

	empty := NewDiagnostics()
	buf.Reset()
	require.False(t, empty.Emit(stream))
	require.Empty(t, buf.String())
}

func TestCallSitesRecorded(t *testing.T) {
	unit, _, err := buildSource(t, `pub fn entry(n) { scale(n, 2) }`)
	require.NoError(t, err)
	fn, _ := unit.Lookup(hash.OfName("entry"))
	site := fn.Call(0)
	require.Equal(t, "scale", site.Name)
	require.Equal(t, hash.OfName("scale"), site.Hash)
}

func TestInstructionString(t *testing.T) {
	unit, _, err := buildSource(t, `pub fn one() { 1 }`)
	require.NoError(t, err)
	fn, _ := unit.Lookup(hash.OfName("one"))
	require.Contains(t, fn.String(), "fn one/0:")
	require.Contains(t, fn.String(), "RETURN_VALUE")
}
