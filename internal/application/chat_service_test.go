package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondGreeting(t *testing.T) {
	svc := NewChatService()

	for i := 0; i < 10; i++ {
		res := svc.Respond("hola")
		assert.Equal(t, "greeting", res.Intent)
	}
}

func TestRespondEmptyInput(t *testing.T) {
	svc := NewChatService()

	for _, msg := range []string{"", "   ", "\t\n"} {
		res := svc.Respond(msg)
		assert.Equal(t, "empty_input", res.Intent)
	}
}

func TestRespondHelp(t *testing.T) {
	svc := NewChatService()

	res := svc.Respond("necesito ayuda")
	assert.Equal(t, "help", res.Intent)
}

func TestRespondDocumentationQuery(t *testing.T) {
	svc := NewChatService()

	res := svc.Respond("donde estan los docs?")
	assert.Equal(t, "documentation_query", res.Intent)
}

func TestRespondTechStack(t *testing.T) {
	svc := NewChatService()

	res := svc.Respond("cual es tu stack?")
	assert.Equal(t, "tech_stack", res.Intent)
}

func TestRespondFeatureNLP(t *testing.T) {
	svc := NewChatService()

	res := svc.Respond("quiero analizar el sentimiento")
	assert.Equal(t, "feature_nlp", res.Intent)
}

func TestRespondFeatureRecs(t *testing.T) {
	svc := NewChatService()

	res := svc.Respond("dame una recomendacion")
	assert.Equal(t, "feature_recs", res.Intent)
}

func TestRespondFirstMatchWins(t *testing.T) {
	svc := NewChatService()

	// Greeting keywords are evaluated before help keywords.
	res := svc.Respond("hola, necesito ayuda")
	assert.Equal(t, "greeting", res.Intent)
}

func TestRespondUnknownFallback(t *testing.T) {
	svc := NewChatService()

	for i := 0; i < 20; i++ {
		res := svc.Respond("xyzzy")
		assert.Equal(t, "unknown", res.Intent)
		assert.Contains(t, fallbackResponses, res.Response)
		assert.Equal(t, []string{"Ayuda", "Ver documentación"}, res.SuggestedActions)
	}
}
