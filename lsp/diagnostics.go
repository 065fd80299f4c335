package lsp

import (
	"strings"
	"sync"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/rewbs/octoseq-intel/intel"
)

// debounceDelay coalesces diagnostics recomputation after rapid edits.
const debounceDelay = 500 * time.Millisecond

// convertDiagnostics maps engine lints onto LSP diagnostics. The result is
// never nil: publishing an empty slice clears stale diagnostics client-side.
func convertDiagnostics(diags []intel.Diagnostic) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	for _, d := range diags {
		sev := protocol.DiagnosticSeverityWarning
		if d.Severity == intel.SeverityInfo {
			sev = protocol.DiagnosticSeverityInformation
		}
		msg := d.Message
		if len(d.Suggestions) > 0 {
			msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
		}
		out = append(out, protocol.Diagnostic{
			Range:    diagnosticRange(d),
			Severity: &sev,
			Message:  msg,
			Source:   strPtr("octoseq-lsp"),
		})
	}
	return out
}

func diagnosticRange(d intel.Diagnostic) protocol.Range {
	start := protocol.Position{
		Line:      protocol.UInteger(d.Location.Line),
		Character: protocol.UInteger(d.Location.Column),
	}
	end := start
	end.Character += protocol.UInteger(d.Length)
	return protocol.Range{Start: start, End: end}
}

func publishDiagnostics(ctx *glsp.Context, uri string, diags []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(string(protocol.ServerTextDocumentPublishDiagnostics), protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diags,
	})
}

// diagnosticsScheduler debounces diagnostics per document: each change
// resets the document's timer, and only the timer that survives the delay
// runs the lints and publishes. Closing a document cancels its timer.
type diagnosticsScheduler struct {
	engine *intel.Engine
	store  *DocumentStore

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDiagnosticsScheduler(engine *intel.Engine, store *DocumentStore) *diagnosticsScheduler {
	return &diagnosticsScheduler{
		engine: engine,
		store:  store,
		timers: make(map[string]*time.Timer),
	}
}

// schedule (re)starts the debounce timer for uri.
func (d *diagnosticsScheduler) schedule(ctx *glsp.Context, uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[uri]; ok {
		t.Stop()
	}
	d.timers[uri] = time.AfterFunc(debounceDelay, func() {
		d.mu.Lock()
		delete(d.timers, uri)
		d.mu.Unlock()
		d.publishNow(ctx, uri)
	})
}

// publishNow runs the lints for uri immediately, bypassing the debounce.
func (d *diagnosticsScheduler) publishNow(ctx *glsp.Context, uri string) {
	doc := d.store.Get(uri)
	if doc == nil {
		return
	}
	diags := convertDiagnostics(d.engine.RunDiagnostics(doc.Content))
	publishDiagnostics(ctx, uri, diags)
}

// cancel stops any pending timer for uri without publishing.
func (d *diagnosticsScheduler) cancel(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[uri]; ok {
		t.Stop()
		delete(d.timers, uri)
	}
}

// stopAll cancels every pending timer. Called on shutdown.
func (d *diagnosticsScheduler) stopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for uri, t := range d.timers {
		t.Stop()
		delete(d.timers, uri)
	}
}

func strPtr(s string) *string { return &s }
