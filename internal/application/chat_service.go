package application

import (
	"math/rand"
	"strings"
)

// ChatResult is the canned-response payload for one chat message.
type ChatResult struct {
	Response         string   `json:"response"`
	Intent           string   `json:"intent"`
	SuggestedActions []string `json:"suggested_actions"`
}

// ChatService maps input text to a fixed set of intents via keyword rules.
// Rules are evaluated top to bottom; the first match wins, so rule order is
// part of the contract.
type ChatService struct{}

func NewChatService() *ChatService { return &ChatService{} }

var fallbackResponses = []string{
	"Interesante... Cuéntame más o pregúntame sobre mis funciones de IA.",
	"No estoy seguro de entender eso, pero puedo ayudarte con recomendaciones o análisis de datos.",
	"Aún estoy aprendiendo. ¿Podrías reformular eso? Intenta preguntar '¿qué puedes hacer?'",
}

// Respond answers one message. Matched intents are deterministic; the
// unknown-intent response is drawn uniformly from fallbackResponses, so
// callers must not assume idempotence for unmatched input.
func (s *ChatService) Respond(message string) ChatResult {
	msg := strings.TrimSpace(strings.ToLower(message))

	if msg == "" {
		return ChatResult{
			Response:         "Hola, parece que no has escrito nada. ¿En qué puedo ayudarte?",
			Intent:           "empty_input",
			SuggestedActions: []string{"Ver documentación", "Probar recomendaciones"},
		}
	}

	if containsAny(msg, "hola", "hello", "hi", "buenas", "que tal") {
		return ChatResult{
			Response:         "¡Hola! Soy el asistente virtual de Aivio. Puedo ayudarte a explorar nuestra API de IA, generar recomendaciones o analizar textos. ¿Por dónde empezamos?",
			Intent:           "greeting",
			SuggestedActions: []string{"¿Qué puedes hacer?", "Analizar sentimiento", "Recomendar productos"},
		}
	}

	if containsAny(msg, "ayuda", "help", "hacer", "capabilities", "funciona") {
		return ChatResult{
			Response:         "Soy una API backend potenciada con IA. Mis capacidades principales son:\n1. Sistema de Recomendaciones (ML)\n2. Análisis de Sentimiento (NLP)\n3. Autenticación segura JWT\n4. Historial persistente.",
			Intent:           "help",
			SuggestedActions: []string{"Ver endpoints", "Probar NLP"},
		}
	}

	if containsAny(msg, "api", "endpoint", "docs") {
		return ChatResult{
			Response:         "Toda nuestra documentación está disponible en /docs. Ahí puedes probar interactivamente todos los endpoints usando Swagger UI.",
			Intent:           "documentation_query",
			SuggestedActions: []string{"Ir a /docs"},
		}
	}

	if containsAny(msg, "golang", "gin", "postgres", "stack", "tecnologia") {
		return ChatResult{
			Response:         "Estoy construido sobre un stack moderno: Go, Gin para el servidor HTTP, y PostgreSQL para persistencia de datos. ¡Rendimiento puro!",
			Intent:           "tech_stack",
			SuggestedActions: []string{"Ver repositorio"},
		}
	}

	if containsAny(msg, "sentim", "analis", "texto") {
		return ChatResult{
			Response:         "Para análisis de texto, usa el endpoint POST /analysis/sentiment. Envíame un texto y te diré si es positivo o negativo.",
			Intent:           "feature_nlp",
			SuggestedActions: []string{"Probar /analysis/sentiment"},
		}
	}

	if containsAny(msg, "recom", "predic") {
		return ChatResult{
			Response:         "El motor de recomendaciones vive en /recommendations. Aprende de tus gustos. ¡Pruébalo enviando una lista de IDs de items!",
			Intent:           "feature_recs",
			SuggestedActions: []string{"Probar /recommendations"},
		}
	}

	return ChatResult{
		Response:         fallbackResponses[rand.Intn(len(fallbackResponses))],
		Intent:           "unknown",
		SuggestedActions: []string{"Ayuda", "Ver documentación"},
	}
}

func containsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
