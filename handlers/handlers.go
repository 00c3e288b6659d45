package handlers

import (
	"pharmacy-server/database"
	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
)

var (
	DB       *database.DB
	Chat     *services.ChatService
	Search   *services.SearchEngine
	Wishlist *services.WishlistService
	Speech   *services.SpeechService
)

// InitializeHandlers wires the shared services into the handler package.
func InitializeHandlers(db *database.DB, chat *services.ChatService, search *services.SearchEngine, wishlist *services.WishlistService, speech *services.SpeechService) {
	DB = db
	Chat = chat
	Search = search
	Wishlist = wishlist
	Speech = speech
}

// clientID identifies the calling browser profile. There are no accounts;
// the header is an opaque client-chosen token.
func clientID(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return "default"
}
