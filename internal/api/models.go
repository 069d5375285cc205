// Package api holds the wire types of the REST surface.
package api

// PostMessageRequest defines model for PostMessageRequest.
type PostMessageRequest struct {
	Text     string `json:"text"`
	Nickname string `json:"nickname"`
}

// PostMessageResponse defines model for PostMessageResponse.
type PostMessageResponse struct {
	Id        int64  `json:"id"`
	UserId    int64  `json:"userId"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"createdAt"`
}

// Message defines model for Message.
type Message struct {
	Id        int64  `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"createdAt"`
}

// GetMessagesResponse defines model for GetMessagesResponse.
type GetMessagesResponse struct {
	Messages []Message `json:"messages"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}
