package controllers

import (
	"log"
	"net/http"
	"strings"

	"actas/tools"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

// POST /api/chat
// Detecta la intención del mensaje y genera la respuesta del asistente.
// Un fallo del servicio degrada a una respuesta fija, nunca a un 500.
func ChatMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		RespondError(c, "message es obligatorio", http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()

	intent, err := tools.DetectIntent(ctx, req.Message)
	if err != nil {
		log.Printf("chat: intención: %v", err)
		intent = "otro"
	}

	reply, err := tools.ChatReply(ctx, req.Message)
	if err != nil {
		log.Printf("chat: respuesta: %v", err)
		reply = tools.AI_UNAVAILABLE_TEXT
	}

	RespondSuccess(c, gin.H{"intent": intent, "reply": reply})
}
