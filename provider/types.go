package provider

import "orchat/model"

// ChatRequest is the request body for the chat completions endpoint.
// Messages carry the entire conversation accumulated so far, oldest first.
type ChatRequest struct {
	Model    string          `json:"model"`
	Messages []model.Message `json:"messages"`
}

// ChatMessage is a chat message as it appears in the response.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choice is a single completion choice. Only the first choice's message
// content is consulted.
type Choice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatResponse is the consumed subset of the chat completions response body.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Choices []Choice `json:"choices"`
}
