package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Texto que se sustituye cuando el servicio generativo falla (cuota, red).
// El análisis completo nunca se aborta por un hallazgo que no se pudo narrar.
const AI_UNAVAILABLE_TEXT = "No fue posible generar el análisis automático para este hallazgo."

// GenerateText llama al Responses API de OpenAI y devuelve el texto del
// asistente.
func GenerateText(ctx context.Context, instructions, input string) (string, error) {
	apiKey := strings.TrimSpace(conf.OpenAI.ApiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}
	model := conf.OpenAI.Model
	if model == "" {
		model = "gpt-4.1-mini"
	}

	reqBody := map[string]any{
		"model":        model,
		"instructions": instructions,
		"input":        input,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://api.openai.com/v1/responses",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Output []struct {
			Type    string `json:"type"`
			Role    string `json:"role"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range parsed.Output {
		if item.Type == "message" && item.Role == "assistant" {
			for _, c := range item.Content {
				if c.Type == "output_text" && strings.TrimSpace(c.Text) != "" {
					if sb.Len() > 0 {
						sb.WriteString("\n")
					}
					sb.WriteString(c.Text)
				}
			}
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("empty response from model (no output_text items found)")
	}

	return out, nil
}

// DetectIntent clasifica el mensaje del usuario en una intención fija.
// Devuelve "otro" cuando el servicio no responde algo reconocible.
func DetectIntent(ctx context.Context, message string) (string, error) {
	instructions := "Clasifica el mensaje del usuario en una sola de estas intenciones: " +
		"consulta_acta, consulta_normativa, soporte, saludo, otro. " +
		"Responde únicamente con la palabra de la intención."
	out, err := GenerateText(ctx, instructions, message)
	if err != nil {
		return "", err
	}
	intent := strings.ToLower(strings.TrimSpace(out))
	switch intent {
	case "consulta_acta", "consulta_normativa", "soporte", "saludo":
		return intent, nil
	}
	return "otro", nil
}

// ChatReply genera la respuesta del asistente para el endpoint de chat.
func ChatReply(ctx context.Context, message string) (string, error) {
	instructions := "Eres el asistente del sistema de actas de entrega de la " +
		"administración pública. Responde en español, de forma breve y formal."
	return GenerateText(ctx, instructions, message)
}

// AnalyzeFinding genera el párrafo explicativo de un hallazgo de
// incumplimiento (pregunta + condición incumplida).
func AnalyzeFinding(ctx context.Context, question, condition string) (string, error) {
	instructions := "Eres auditor de la administración pública. Redacta un párrafo " +
		"formal en español explicando el hallazgo de incumplimiento indicado y su " +
		"posible consecuencia. No inventes normativa."
	input := fmt.Sprintf("Pregunta de control: %s\nCondición incumplida: %s", question, condition)
	return GenerateText(ctx, instructions, input)
}

// ThrottleDelay es la pausa fija entre llamadas generativas consecutivas
// (evita rate limit cuando un request analiza varios hallazgos).
func ThrottleDelay() time.Duration {
	ms := conf.OpenAI.ThrottleMs
	if ms <= 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}
