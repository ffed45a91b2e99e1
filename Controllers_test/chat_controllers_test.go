package Controllers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/korbahq/korba-app/controllers"
	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/services"
	"github.com/korbahq/korba-app/utils"
)

type stubProvider struct {
	reply string
	err   error
}

func (p stubProvider) Generate(context.Context, []services.Message) (string, error) {
	return p.reply, p.err
}

func setupChatRouter(provider services.ChatProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	chatCtrl := controllers.NewChatController(services.NewChatService(provider, models.MenuData))
	router.POST("/chat", chatCtrl.OpenConversation)
	router.GET("/chat/:chat_id", chatCtrl.GetTranscript)
	router.POST("/chat/:chat_id/messages", chatCtrl.SendMessage)
	router.DELETE("/chat/:chat_id", chatCtrl.CloseConversation)
	return router
}

func openChat(t *testing.T, router *gin.Engine) string {
	t.Helper()
	code, resp := doJSON(t, router, "POST", "/chat", nil, "")
	assert.Equal(t, http.StatusCreated, code)
	return dataOf(t, resp)["chat_id"].(string)
}

func TestChatRoundTripOverHTTP(t *testing.T) {
	utils.InitLogger()
	router := setupChatRouter(stubProvider{reply: "Try the Kachay Beef Pulao."})
	chatID := openChat(t, router)

	code, resp := doJSON(t, router, "POST", "/chat/"+chatID+"/messages", gin.H{"text": "What should I order?"}, "")
	assert.Equal(t, http.StatusOK, code)

	messages := dataOf(t, resp)["messages"].([]interface{})
	assert.Len(t, messages, 3)
	last := messages[2].(map[string]interface{})
	assert.Equal(t, "assistant", last["role"])
	assert.Equal(t, "Try the Kachay Beef Pulao.", last["text"])
}

func TestChatProviderFailureYieldsFallbackReply(t *testing.T) {
	utils.InitLogger()
	router := setupChatRouter(stubProvider{err: errors.New("boom")})
	chatID := openChat(t, router)

	code, resp := doJSON(t, router, "POST", "/chat/"+chatID+"/messages", gin.H{"text": "hello"}, "")
	assert.Equal(t, http.StatusOK, code, "provider failures never surface as HTTP errors")

	messages := dataOf(t, resp)["messages"].([]interface{})
	assert.Len(t, messages, 3)
	assert.Equal(t, services.FallbackError, messages[2].(map[string]interface{})["text"])
}

func TestChatBlankMessageLeavesTranscriptAlone(t *testing.T) {
	utils.InitLogger()
	router := setupChatRouter(stubProvider{reply: "unused"})
	chatID := openChat(t, router)

	code, resp := doJSON(t, router, "POST", "/chat/"+chatID+"/messages", gin.H{"text": "  "}, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, dataOf(t, resp)["messages"].([]interface{}), 1)
}

func TestChatUnknownConversation(t *testing.T) {
	utils.InitLogger()
	router := setupChatRouter(stubProvider{reply: "unused"})

	code, _ := doJSON(t, router, "GET", "/chat/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, router, "POST", "/chat/missing/messages", gin.H{"text": "hi"}, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestChatCloseRemovesConversation(t *testing.T) {
	utils.InitLogger()
	router := setupChatRouter(stubProvider{reply: "bye"})
	chatID := openChat(t, router)

	code, _ := doJSON(t, router, "DELETE", "/chat/"+chatID, nil, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, router, "GET", "/chat/"+chatID, nil, "")
	assert.Equal(t, http.StatusNotFound, code)
}
