package domain

// Category is the triage outcome for an email. Produtivo means the message
// requires an action or response; Improdutivo means no action is needed.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// ClassificationResult pairs the predicted category with a suggested reply.
type ClassificationResult struct {
	Category Category
	Response string
}
