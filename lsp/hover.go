package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/rewbs/octoseq-intel/intel"
)

// hoverResponse converts an engine hover into the LSP response, or nil when
// there is nothing to show.
func hoverResponse(h *intel.HoverInfo) *protocol.Hover {
	if h == nil {
		return nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: h.Markdown(),
		},
	}
}

// signatureHelpResponse converts engine signature help into the LSP
// response, or nil when the cursor is not inside a known call.
func signatureHelpResponse(info *intel.SignatureInfo) *protocol.SignatureHelp {
	if info == nil {
		return nil
	}

	sigs := make([]protocol.SignatureInformation, 0, len(info.Signatures))
	for _, sig := range info.Signatures {
		si := protocol.SignatureInformation{Label: sig.Label}
		if sig.Documentation != "" {
			si.Documentation = sig.Documentation
		}
		for _, p := range sig.Params {
			pi := protocol.ParameterInformation{Label: p.Label}
			if p.Documentation != "" {
				pi.Documentation = p.Documentation
			}
			si.Parameters = append(si.Parameters, pi)
		}
		sigs = append(sigs, si)
	}

	active := protocol.UInteger(info.ActiveSignature)
	activeParam := protocol.UInteger(info.ActiveParameter)
	return &protocol.SignatureHelp{
		Signatures:      sigs,
		ActiveSignature: &active,
		ActiveParameter: &activeParam,
	}
}
