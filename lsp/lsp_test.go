package lsp

import (
	"strings"
	"testing"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/rewbs/octoseq-intel/catalog"
	"github.com/rewbs/octoseq-intel/intel"
)

const testScript = `let beam = line.strip(#{ points: 64 });
beam.bind("width", inputs.mix.energy);
fx.bloom(#{ thresh: 1 })
`

// TestDocumentStore_SetGet checks basic document store operations.
func TestDocumentStore_SetGet(t *testing.T) {
	store := NewDocumentStore()
	doc := store.Set("file:///test.oseq", testScript)
	if doc == nil {
		t.Fatal("Set returned nil")
	}
	got := store.Get("file:///test.oseq")
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Content != testScript {
		t.Error("stored content does not match")
	}
	store.Delete("file:///test.oseq")
	if store.Get("file:///test.oseq") != nil {
		t.Error("document not deleted")
	}
}

// TestOffsetAt checks line/character to byte offset conversion.
func TestOffsetAt(t *testing.T) {
	content := "abc\ndefgh\n\nx"
	cases := []struct {
		line, char, want int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{0, 99, 3}, // clamped to line end
		{1, 0, 4},
		{1, 5, 9},
		{2, 0, 10},
		{3, 1, 12},
		{99, 0, 12}, // clamped to document end
	}
	for _, c := range cases {
		if got := offsetAt(content, c.line, c.char); got != c.want {
			t.Errorf("offsetAt(%d, %d) = %d, want %d", c.line, c.char, got, c.want)
		}
	}
}

// TestCompletionItems checks engine-to-protocol completion conversion.
func TestCompletionItems(t *testing.T) {
	e := intel.New(catalog.Default())
	items := completionItems(e.Complete("inputs.mix.", "inputs.mix."))
	if len(items) == 0 {
		t.Fatal("no completion items")
	}
	var energy *protocol.CompletionItem
	for i := range items {
		if items[i].Label == "energy" {
			energy = &items[i]
		}
	}
	if energy == nil {
		t.Fatal("energy not offered after inputs.mix.")
	}
	if energy.Kind == nil || *energy.Kind != protocol.CompletionItemKindProperty {
		t.Error("energy should be a property item")
	}
}

// TestCompletionItemsInsertText checks that config keys carry insert text.
func TestCompletionItemsInsertText(t *testing.T) {
	e := intel.New(catalog.Default())
	items := completionItems(e.Complete("fx.bloom(#{ ", "fx.bloom(#{ "))
	if len(items) == 0 {
		t.Fatal("no completion items")
	}
	for _, it := range items {
		if it.InsertText == nil {
			t.Errorf("key %q has no insert text", it.Label)
			continue
		}
		if *it.InsertText != it.Label+": " {
			t.Errorf("key %q insert text %q", it.Label, *it.InsertText)
		}
	}
}

// TestHoverResponse checks hover conversion including the nil case.
func TestHoverResponse(t *testing.T) {
	if hoverResponse(nil) != nil {
		t.Error("nil hover should convert to nil response")
	}
	e := intel.New(catalog.Default())
	h := hoverResponse(e.Hover("inputs.mi", "inputs.mix"))
	if h == nil {
		t.Fatal("expected hover for inputs.mix")
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("unexpected contents type %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown || mc.Value == "" {
		t.Error("hover should carry non-empty markdown")
	}
}

// TestSignatureHelpResponse checks signature conversion.
func TestSignatureHelpResponse(t *testing.T) {
	if signatureHelpResponse(nil) != nil {
		t.Error("nil signature info should convert to nil response")
	}
	e := intel.New(catalog.Default())
	sh := signatureHelpResponse(e.SignatureHelp("lerp(0.2, ", "lerp(0.2, "))
	if sh == nil {
		t.Fatal("expected signature help inside lerp call")
	}
	if len(sh.Signatures) != 1 {
		t.Fatalf("expected one signature, got %d", len(sh.Signatures))
	}
	if len(sh.Signatures[0].Parameters) != 3 {
		t.Errorf("lerp should have 3 parameters, got %d", len(sh.Signatures[0].Parameters))
	}
	if sh.ActiveParameter == nil || *sh.ActiveParameter != 1 {
		t.Error("active parameter should be 1")
	}
}

// TestConvertDiagnostics checks lint conversion and the never-nil contract.
func TestConvertDiagnostics(t *testing.T) {
	e := intel.New(catalog.Default())

	empty := convertDiagnostics(e.RunDiagnostics(""))
	if empty == nil {
		t.Fatal("diagnostics must never be nil")
	}
	if len(empty) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(empty))
	}

	diags := convertDiagnostics(e.RunDiagnostics(testScript))
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityWarning {
		t.Error("unknown config key should be a warning")
	}
	if d.Range.Start.Line != 2 {
		t.Errorf("diagnostic on line %d, want 2", d.Range.Start.Line)
	}
	if !strings.Contains(d.Message, "threshold") {
		t.Errorf("message %q should suggest threshold", d.Message)
	}
}

// TestDiagnosticsSchedulerDebounce checks that rapid schedules coalesce and
// cancel stops a pending publish.
func TestDiagnosticsSchedulerDebounce(t *testing.T) {
	store := NewDocumentStore()
	d := newDiagnosticsScheduler(intel.New(catalog.Default()), store)
	store.Set("file:///a.oseq", testScript)

	// nil context: publish is a no-op, but timers must still fire and clear.
	for i := 0; i < 5; i++ {
		d.schedule(nil, "file:///a.oseq")
	}
	d.mu.Lock()
	pending := len(d.timers)
	d.mu.Unlock()
	if pending != 1 {
		t.Fatalf("expected one coalesced timer, got %d", pending)
	}

	d.cancel("file:///a.oseq")
	d.mu.Lock()
	pending = len(d.timers)
	d.mu.Unlock()
	if pending != 0 {
		t.Fatalf("expected no timers after cancel, got %d", pending)
	}

	d.schedule(nil, "file:///a.oseq")
	time.Sleep(debounceDelay + 100*time.Millisecond)
	d.mu.Lock()
	pending = len(d.timers)
	d.mu.Unlock()
	if pending != 0 {
		t.Fatalf("timer should clear itself after firing, got %d", pending)
	}
}

// TestNewServer checks handler wiring.
func TestNewServer(t *testing.T) {
	s := NewServer(catalog.Default())
	if s.handler.TextDocumentCompletion == nil {
		t.Error("completion handler not registered")
	}
	if s.handler.TextDocumentSignatureHelp == nil {
		t.Error("signature help handler not registered")
	}
	if s.handler.TextDocumentDidClose == nil {
		t.Error("didClose handler not registered")
	}
}
