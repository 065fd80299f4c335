package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewbs/octoseq-intel/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.Build())
}

func ident(name string) ChainSegment { return ChainSegment{Kind: SegmentIdent, Name: name} }
func call(name string) ChainSegment  { return ChainSegment{Kind: SegmentCall, Name: name} }
func index(key string) ChainSegment  { return ChainSegment{Kind: SegmentIndex, Name: key} }

func TestResolveNamespaceProperty(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{ident("inputs"), ident("mix")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "AudioInput", res.Entry.Name)
	require.NotNil(t, res.Property)
	assert.Equal(t, "mix", res.Property.Name)
	assert.Equal(t, "AudioInput", res.NextType)
}

func TestResolveIntoSignal(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{ident("inputs"), ident("mix"), ident("energy")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Signal", res.Entry.Name)
}

func TestResolveChainedMethod(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments(
		[]ChainSegment{ident("inputs"), ident("mix"), ident("energy"), call("smooth")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Signal", res.Entry.Name)
	require.NotNil(t, res.Method)
	assert.Equal(t, "smooth", res.Method.Name)
}

func TestResolveBracketIndexSubstitutesElementType(t *testing.T) {
	e := newTestEngine(t)

	res := e.ResolveChainSegments(
		[]ChainSegment{ident("inputs"), ident("mix"), ident("bands"), index("low")}, nil)
	require.True(t, res.Success)
	assert.Equal(t, "Signal", res.Entry.Name)

	res = e.ResolveChainSegments(
		[]ChainSegment{ident("inputs"), ident("stems"), index("drums"), ident("energy")}, nil)
	require.True(t, res.Success)
	assert.Equal(t, "Signal", res.Entry.Name)
}

func TestResolveIndexOnNonCollection(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments(
		[]ChainSegment{ident("inputs"), ident("mix"), index("bogus")}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "cannot index")
}

func TestResolveUnknownRoot(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{ident("nonsense")}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "unknown identifier")
}

func TestResolveUnknownMember(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{ident("inputs"), ident("bogus")}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "unknown member")
	assert.Contains(t, res.Err, "bogus")
}

func TestResolveLocalRoot(t *testing.T) {
	e := newTestEngine(t)
	locals := map[string]string{"beam": "LineStripEntity"}
	res := e.ResolveChainSegments([]ChainSegment{ident("beam")}, locals)
	require.True(t, res.Success)
	assert.Equal(t, "LineStripEntity", res.Entry.Name)

	res = e.ResolveChainSegments([]ChainSegment{ident("beam"), call("bind")}, locals)
	require.True(t, res.Success)
	assert.Equal(t, "LineStripEntity", res.Entry.Name)
	require.NotNil(t, res.Method)
	assert.Equal(t, "bind", res.Method.Name)
}

func TestResolveCallAtRoot(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{call("osc")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Signal", res.Entry.Name)
	require.NotNil(t, res.Method)
	assert.Equal(t, "osc", res.Method.Name)
	assert.Equal(t, "Signal", res.NextType)
}

func TestResolveCallAtRootPrimitiveYield(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments([]ChainSegment{call("lerp")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Method)
	assert.Equal(t, "float", res.NextType)
}

func TestResolveTerminalPrimitiveProperty(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments(
		[]ChainSegment{ident("inputs"), ident("mix"), ident("energy"), ident("value")}, nil)
	require.True(t, res.Success)
	require.NotNil(t, res.Property)
	assert.Equal(t, "value", res.Property.Name)
	assert.Equal(t, "float", res.NextType)
}

func TestResolveEmptyChain(t *testing.T) {
	e := newTestEngine(t)
	res := e.ResolveChainSegments(nil, nil)
	assert.False(t, res.Success)
}

func TestResolveDeterministic(t *testing.T) {
	e := newTestEngine(t)
	segs := []ChainSegment{ident("inputs"), ident("mix"), ident("bands"), index("high")}
	first := e.ResolveChainSegments(segs, nil)
	second := e.ResolveChainSegments(segs, nil)
	assert.Equal(t, first, second)
}

func TestInferLocals(t *testing.T) {
	e := newTestEngine(t)
	script := `let beam = line.strip(#{});
let level = inputs.mix.energy.smooth(0.3);
beam.bind("width", level);
`
	locals := e.InferLocals(script)
	assert.Equal(t, "LineStripEntity", locals["beam"])
	assert.Equal(t, "Signal", locals["level"])
}

func TestInferLocalsSkipsUnresolvable(t *testing.T) {
	e := newTestEngine(t)
	script := `let good = inputs.mix;
let bad = nosuchthing.at.all;
let alsoBad = 1 + 2;
`
	locals := e.InferLocals(script)
	assert.Equal(t, "AudioInput", locals["good"])
	assert.NotContains(t, locals, "bad")
	assert.NotContains(t, locals, "alsoBad")
}

func TestInferLocalsCallInitializer(t *testing.T) {
	e := newTestEngine(t)
	script := `let s = osc(0.5);
let x = lerp(0, 1, 0.5);
`
	locals := e.InferLocals(script)
	assert.Equal(t, "Signal", locals["s"])
	// A primitive yield is recorded as the primitive, not the helper entry.
	assert.Equal(t, "float", locals["x"])
}

func TestInferLocalsNoForwardReferences(t *testing.T) {
	e := newTestEngine(t)
	script := `let first = second;
let second = inputs.mix;
`
	locals := e.InferLocals(script)
	assert.NotContains(t, locals, "first")
	assert.Equal(t, "AudioInput", locals["second"])
}
