package dto

// ChatTurn is one role-tagged message of the conversation transcript.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries the new message plus the prior transcript.
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history"`
}

// ChatResponse returns the reply and the updated transcript.
type ChatResponse struct {
	Reply   string     `json:"resposta"`
	History []ChatTurn `json:"history"`
}
