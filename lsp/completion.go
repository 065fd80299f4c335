package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/rewbs/octoseq-intel/intel"
)

// completionItems converts engine suggestions into LSP completion items.
func completionItems(items []intel.Completion) []protocol.CompletionItem {
	out := make([]protocol.CompletionItem, 0, len(items))
	for _, it := range items {
		kind := completionItemKind(it.Kind)
		item := protocol.CompletionItem{
			Label: it.Label,
			Kind:  &kind,
		}
		if it.Detail != "" {
			detail := it.Detail
			item.Detail = &detail
		}
		if it.Documentation != "" {
			item.Documentation = it.Documentation
		}
		if it.InsertText != "" && it.InsertText != it.Label {
			insert := it.InsertText
			item.InsertText = &insert
		}
		out = append(out, item)
	}
	return out
}

// completionItemKind maps engine suggestion kinds onto LSP item kinds, which
// drive the icons most editors render.
func completionItemKind(kind intel.CompletionKind) protocol.CompletionItemKind {
	switch kind {
	case intel.CompletionNamespace:
		return protocol.CompletionItemKindModule
	case intel.CompletionProperty:
		return protocol.CompletionItemKindProperty
	case intel.CompletionMethod:
		return protocol.CompletionItemKindMethod
	case intel.CompletionKey:
		return protocol.CompletionItemKindField
	case intel.CompletionValue:
		return protocol.CompletionItemKindValue
	case intel.CompletionLifecycle:
		return protocol.CompletionItemKindEvent
	case intel.CompletionHelper:
		return protocol.CompletionItemKindFunction
	case intel.CompletionLocal:
		return protocol.CompletionItemKindVariable
	default:
		return protocol.CompletionItemKindText
	}
}
