package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []Completion) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestCompleteTopLevel(t *testing.T) {
	e := newTestEngine(t)
	items := e.Complete("inp", "inp")
	require.NotEmpty(t, items)
	assert.Contains(t, labels(items), "inputs")
	assert.NotContains(t, labels(items), "fx")
}

func TestCompleteTopLevelIncludesLocals(t *testing.T) {
	e := newTestEngine(t)
	full := "let beam = line.strip(#{});\nbea"
	items := e.Complete(full, full)
	require.NotEmpty(t, items)
	found := false
	for _, it := range items {
		if it.Label == "beam" {
			found = true
			assert.Equal(t, CompletionLocal, it.Kind)
			assert.Equal(t, "LineStripEntity", it.Detail)
		}
	}
	assert.True(t, found, "local beam should be offered")
}

func TestCompleteAfterDotMembers(t *testing.T) {
	e := newTestEngine(t)
	items := e.Complete("inputs.mix.", "inputs.mix.")
	got := labels(items)
	assert.Contains(t, got, "energy")
	assert.Contains(t, got, "bands")
	assert.Contains(t, got, "band")
}

func TestCompleteLocalEntityMembers(t *testing.T) {
	e := newTestEngine(t)
	full := "let beam = line.strip(#{}); beam."
	items := e.Complete(full, full)
	got := labels(items)
	assert.Contains(t, got, "bind")
	assert.Contains(t, got, "width")
	assert.Contains(t, got, "opacity")
	// Members come from the resolved entity type, not the global list.
	assert.NotContains(t, got, "inputs")
	assert.NotContains(t, got, "lerp")
}

func TestCompleteLocalFromHelperCall(t *testing.T) {
	e := newTestEngine(t)
	full := "let s = osc(0.5);\ns."
	items := e.Complete(full, full)
	got := labels(items)
	assert.Contains(t, got, "smooth")
	assert.Contains(t, got, "clamp")
	// The local is a Signal, not an alias of the helper entry.
	assert.NotContains(t, got, "osc")
}

func TestCompleteUnresolvableRootFallsBack(t *testing.T) {
	e := newTestEngine(t)
	items := e.Complete("mystery.", "mystery.")
	got := labels(items)
	assert.Contains(t, got, "bind")
	assert.Contains(t, got, "opacity")
}

func TestCompleteConfigMapKeys(t *testing.T) {
	e := newTestEngine(t)
	before := "fx.bloom(#{ "
	items := e.Complete(before, before)
	got := labels(items)
	assert.Contains(t, got, "threshold")
	assert.Contains(t, got, "intensity")
	for _, it := range items {
		assert.Equal(t, CompletionKey, it.Kind)
		assert.Equal(t, it.Label+": ", it.InsertText)
	}
}

func TestCompleteConfigMapPartialKey(t *testing.T) {
	e := newTestEngine(t)
	before := "fx.bloom(#{ thresh"
	items := e.Complete(before, before)
	require.Len(t, items, 1)
	assert.Equal(t, "threshold", items[0].Label)
}

func TestCompleteConfigMapExcludesPresentKeys(t *testing.T) {
	e := newTestEngine(t)
	before := "fx.bloom(#{ threshold: 0.7, "
	items := e.Complete(before, before)
	got := labels(items)
	assert.NotContains(t, got, "threshold")
	assert.Contains(t, got, "intensity")
}

func TestCompleteBracketKeys(t *testing.T) {
	e := newTestEngine(t)
	before := `inputs.mix.bands["`
	items := e.Complete(before, before)
	got := labels(items)
	assert.ElementsMatch(t, []string{"sub", "low", "mid", "high", "presence"}, got)
}

func TestCompleteBracketKeyPartialCaseInsensitive(t *testing.T) {
	e := newTestEngine(t)
	before := `inputs.mix.bands["LO`
	items := e.Complete(before, before)
	require.Len(t, items, 1)
	assert.Equal(t, "low", items[0].Label)
}

func TestCompleteBracketKeyClosesQuoteWhenNoneOpen(t *testing.T) {
	e := newTestEngine(t)
	before := "inputs.stems["
	items := e.Complete(before, before)
	require.NotEmpty(t, items)
	assert.Equal(t, `"drums"]`, items[0].InsertText)
}

func TestCompleteInStringSuppressed(t *testing.T) {
	e := newTestEngine(t)
	before := `let palette = "sun`
	items := e.Complete(before, before)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCompleteNeverPanics(t *testing.T) {
	e := newTestEngine(t)
	for _, in := range []string{"", ".", "((#{[", `"`, "cube.mat", "}})]"} {
		assert.NotPanics(t, func() { e.Complete(in, in) }, "input %q", in)
	}
}

func TestHoverGlobalEntry(t *testing.T) {
	e := newTestEngine(t)
	h := e.Hover("inpu", "inputs.mix")
	require.NotNil(t, h)
	assert.Equal(t, "inputs", h.Title)
	assert.NotEmpty(t, h.Documentation)
	assert.NotEmpty(t, h.Markdown())
}

func TestHoverChainProperty(t *testing.T) {
	e := newTestEngine(t)
	h := e.Hover("inputs.mi", "inputs.mix")
	require.NotNil(t, h)
	assert.Equal(t, "inputs.mix", h.Title)
	assert.Equal(t, "AudioInput", h.Detail)
}

func TestHoverChainMethod(t *testing.T) {
	e := newTestEngine(t)
	full := "inputs.mix.energy.smooth(0.2)"
	h := e.Hover("inputs.mix.energy.smo", full)
	require.NotNil(t, h)
	assert.Equal(t, "Signal.smooth", h.Title)
	assert.Contains(t, h.Signature, "smooth(")
}

func TestHoverConfigKey(t *testing.T) {
	e := newTestEngine(t)
	full := "fx.bloom(#{ threshold: 0.7 })"
	h := e.Hover("fx.bloom(#{ thres", full)
	require.NotNil(t, h)
	assert.Contains(t, h.Title, "threshold")
	assert.Contains(t, h.Title, "fx.bloom")
}

func TestHoverLocalVariable(t *testing.T) {
	e := newTestEngine(t)
	full := "let beam = line.strip(#{});\nbeam.pulse(inputs.mix.energy)"
	h := e.Hover(full[:len("let beam = line.strip(#{});\nbea")], full)
	require.NotNil(t, h)
	assert.Equal(t, "beam", h.Title)
	assert.Contains(t, h.Detail, "LineStripEntity")
}

func TestHoverAnyMethodFallback(t *testing.T) {
	e := newTestEngine(t)
	h := e.Hover("smoo", "smooth")
	require.NotNil(t, h)
	assert.Equal(t, "smooth", h.Title)
	assert.Contains(t, h.Signature, "Signal.smooth")
}

func TestHoverNothing(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.Hover("", ""))
	assert.Nil(t, e.Hover("zzznope", "zzznope"))
}

func TestSignatureHelpHelper(t *testing.T) {
	e := newTestEngine(t)
	full := "lerp(0.2, "
	info := e.SignatureHelp(full, full)
	require.NotNil(t, info)
	require.Len(t, info.Signatures, 1)
	assert.Contains(t, info.Signatures[0].Label, "lerp(")
	require.Len(t, info.Signatures[0].Params, 3)
	assert.Equal(t, 1, info.ActiveParameter)
}

func TestSignatureHelpChainMethod(t *testing.T) {
	e := newTestEngine(t)
	full := "inputs.mix.energy.smooth("
	info := e.SignatureHelp(full, full)
	require.NotNil(t, info)
	require.NotEmpty(t, info.Signatures)
	assert.Contains(t, info.Signatures[0].Label, "smooth(")
	assert.Equal(t, 0, info.ActiveParameter)
}

func TestSignatureHelpClampsActiveParameter(t *testing.T) {
	e := newTestEngine(t)
	full := "lerp(1, 2, 3, "
	info := e.SignatureHelp(full, full)
	require.NotNil(t, info)
	assert.Equal(t, 2, info.ActiveParameter)
}

func TestSignatureHelpInsideConfigMap(t *testing.T) {
	e := newTestEngine(t)
	full := "fx.bloom(#{ "
	info := e.SignatureHelp(full, full)
	require.NotNil(t, info)
	assert.Contains(t, info.Signatures[0].Label, "bloom(")
}

func TestSignatureHelpOutsideCall(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.SignatureHelp("inputs.", "inputs."))
	assert.Nil(t, e.SignatureHelp("", ""))
}
