package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/korbahq/korba-app/services"
	"github.com/korbahq/korba-app/utils"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

var errConversationNotFound = errors.New("conversation not found")

// OpenConversation -> new transcript starting with the greeting
func (cc *ChatController) OpenConversation(c *gin.Context) {
	id, transcript := cc.Chat.Open()
	utils.RespondJSON(c, http.StatusCreated, "Conversation opened", gin.H{
		"chat_id":  id,
		"messages": transcript,
	})
}

// SendMessage -> one round trip with the concierge. Blank input and sends
// while a reply is pending return the transcript unchanged.
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("chat_id")
	transcript, ok := cc.Chat.Send(c.Request.Context(), id, req.Text)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errConversationNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Transcript", gin.H{
		"chat_id":  id,
		"messages": transcript,
	})
}

// GetTranscript -> current messages
func (cc *ChatController) GetTranscript(c *gin.Context) {
	id := c.Param("chat_id")
	transcript, ok := cc.Chat.Transcript(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errConversationNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Transcript", gin.H{
		"chat_id":  id,
		"messages": transcript,
	})
}

// CloseConversation -> teardown; a reply still in flight is discarded
func (cc *ChatController) CloseConversation(c *gin.Context) {
	if !cc.Chat.Close(c.Param("chat_id")) {
		utils.RespondError(c, http.StatusNotFound, errConversationNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Conversation closed", nil)
}
