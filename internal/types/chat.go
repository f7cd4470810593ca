package types

// ChatRequest carries one chatbot query. An empty message is not a validation
// error; the bot answers it with a prompt to type something.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the bot's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
