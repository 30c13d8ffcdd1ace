package classifier

import "strings"

// productiveKeywords are action-signaling terms scanned in normalized text
// (lowercase, no diacritics) when no trained model is usable. Portuguese
// first, then the English equivalents seen in mixed-language inboxes.
var productiveKeywords = []string{
	"suporte", "problema", "erro", "status", "atualizacao", "duvida",
	"reuniao", "contrato", "anexo", "urgente", "processo", "solicitacao",
	"chamado", "ajuda", "cliente", "projeto", "prazo", "entrega",
	"relatorio", "documento", "pagamento", "fatura", "nota fiscal",
	"orcamento", "proposta",
	"support", "error", "issue", "deadline", "invoice", "contract",
	"urgent", "request", "meeting", "payment", "help",
}

// matchesProductiveKeyword reports whether any keyword occurs in the
// normalized text.
func matchesProductiveKeyword(normalized string) bool {
	for _, kw := range productiveKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
