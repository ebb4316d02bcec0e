// Package api contains the wire types of the remote posts protocol.
// The remote speaks a JSONPlaceholder-shaped API: a flat array of posts
// on read, a single post on write.
package api

// Post представляет один пост удаленного API
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
