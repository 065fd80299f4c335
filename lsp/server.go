package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/rewbs/octoseq-intel/catalog"
	"github.com/rewbs/octoseq-intel/intel"
)

// Version is set at build time.
var Version = "dev"

// Server is the oseq script language server.
type Server struct {
	engine *intel.Engine
	store  *DocumentStore
	diag   *diagnosticsScheduler

	handler protocol.Handler
	server  *glspserver.Server
}

// NewServer creates an LSP server over the given capability catalog with all
// handlers registered.
func NewServer(reg *catalog.Registry) *Server {
	engine := intel.New(reg)
	s := &Server{
		engine: engine,
		store:  NewDocumentStore(),
	}
	s.diag = newDiagnosticsScheduler(engine, s.store)
	s.handler = protocol.Handler{
		Initialize:                s.initialize,
		Initialized:               s.initialized,
		Shutdown:                  s.shutdown,
		TextDocumentDidOpen:       s.didOpen,
		TextDocumentDidChange:     s.didChange,
		TextDocumentDidClose:      s.didClose,
		TextDocumentDidSave:       s.didSave,
		TextDocumentCompletion:    s.completion,
		TextDocumentHover:         s.hover,
		TextDocumentSignatureHelp: s.signatureHelp,
	}
	s.server = glspserver.NewServer(&s.handler, "octoseq-lsp", false)
	return s
}

// RunStdio starts the LSP server over stdio (blocking).
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// initialize handles the LSP initialize request.
func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	_ = params
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
		Save:      boolPtr(true),
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "[", `"`, "{"},
	}
	capabilities.SignatureHelpProvider = &protocol.SignatureHelpOptions{
		TriggerCharacters: []string{"(", ","},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "octoseq-lsp-server",
			Version: &Version,
		},
	}, nil
}

// initialized handles the initialized notification.
func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

// shutdown handles the shutdown request.
func (s *Server) shutdown(_ *glsp.Context) error {
	s.diag.stopAll()
	return nil
}

// didOpen handles textDocument/didOpen.
func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.store.Set(uri, params.TextDocument.Text)
	s.diag.schedule(ctx, uri)
	return nil
}

// didChange handles textDocument/didChange.
func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync: take the last whole-document change.
	var content string
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			content = c.Text
		}
	}
	uri := string(params.TextDocument.URI)
	s.store.Set(uri, content)
	s.diag.schedule(ctx, uri)
	return nil
}

// didClose handles textDocument/didClose.
func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.diag.cancel(uri)
	s.store.Delete(uri)
	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// didSave handles textDocument/didSave.
func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.store.Get(uri) != nil {
		s.diag.publishNow(ctx, uri)
	}
	return nil
}

// completion handles textDocument/completion.
func (s *Server) completion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.store.Get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	before := doc.Content[:offsetAt(doc.Content, int(params.Position.Line), int(params.Position.Character))]
	items := s.engine.Complete(before, doc.Content)
	return completionItems(items), nil
}

// hover handles textDocument/hover.
func (s *Server) hover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.store.Get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	before := doc.Content[:offsetAt(doc.Content, int(params.Position.Line), int(params.Position.Character))]
	return hoverResponse(s.engine.Hover(before, doc.Content)), nil
}

// signatureHelp handles textDocument/signatureHelp.
func (s *Server) signatureHelp(_ *glsp.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	doc := s.store.Get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	before := doc.Content[:offsetAt(doc.Content, int(params.Position.Line), int(params.Position.Character))]
	return signatureHelpResponse(s.engine.SignatureHelp(before, doc.Content)), nil
}

func boolPtr(v bool) *bool { return &v }
