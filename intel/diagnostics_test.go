package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsEmptyDocument(t *testing.T) {
	e := newTestEngine(t)
	diags := e.RunDiagnostics("")
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestDiagnosticsCleanScript(t *testing.T) {
	e := newTestEngine(t)
	script := `let beam = line.strip(#{ points: 64 });
beam.bind("width", inputs.mix.energy);
fx.bloom(#{ threshold: 0.7, intensity: 1.2 });
`
	diags := e.RunDiagnostics(script)
	assert.Empty(t, diags)
}

func TestDiagnosticsUnknownConfigKey(t *testing.T) {
	e := newTestEngine(t)
	diags := e.RunDiagnostics("fx.bloom(#{ thresh: 1 })")
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Contains(t, d.Message, "thresh")
	assert.Contains(t, d.Message, "fx.bloom")
	assert.Contains(t, d.Suggestions, "threshold")
	assert.Equal(t, 0, d.Location.Line)
	assert.Equal(t, 12, d.Location.Column)
	assert.Equal(t, len("thresh"), d.Length)
}

func TestDiagnosticsSuggestionLimit(t *testing.T) {
	e := newTestEngine(t)
	diags := e.RunDiagnostics("fx.bloom(#{ zzz: 1 })")
	require.Len(t, diags, 1)
	assert.LessOrEqual(t, len(diags[0].Suggestions), 3)
}

func TestDiagnosticsUnknownMember(t *testing.T) {
	e := newTestEngine(t)
	script := `let beam = line.strip(#{});
beam.bnd("width", inputs.mix.energy);
`
	diags := e.RunDiagnostics(script)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Contains(t, d.Message, "bnd")
	assert.Contains(t, d.Message, "LineStripEntity")
	assert.Contains(t, d.Suggestions, "bind")
	assert.Equal(t, 1, d.Location.Line)
	assert.Equal(t, 5, d.Location.Column)
}

func TestDiagnosticsLocalFromHelperCall(t *testing.T) {
	e := newTestEngine(t)
	script := `let s = osc(0.5);
s.smooth(0.1);
`
	diags := e.RunDiagnostics(script)
	assert.Empty(t, diags)
}

func TestDiagnosticsUnresolvableRootIgnored(t *testing.T) {
	e := newTestEngine(t)
	diags := e.RunDiagnostics("mystery.whatever(1)")
	assert.Empty(t, diags)
}

func TestDiagnosticsMultilineLocations(t *testing.T) {
	e := newTestEngine(t)
	script := "// intro\n\nfx.bloom(#{ radus: 2 })\n"
	diags := e.RunDiagnostics(script)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Location.Line)
	assert.Contains(t, diags[0].Suggestions, "radius")
}

func TestDiagnosticsNeverPanics(t *testing.T) {
	e := newTestEngine(t)
	for _, in := range []string{"#{", "fx.bloom(#{", "((((", `"open`, "a.b(#{ x: "} {
		assert.NotPanics(t, func() { e.RunDiagnostics(in) }, "input %q", in)
	}
}
