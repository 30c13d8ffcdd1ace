package dto

// ClassifyRequest is the /process_text payload.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse mirrors the public contract: Portuguese field names,
// category is "Produtivo" or "Improdutivo".
type ClassifyResponse struct {
	Category string `json:"categoria"`
	Response string `json:"resposta"`
}
