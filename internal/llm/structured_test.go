package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andras/talent-sonar/internal/schemas"
)

const greetingSchema = `{
	"type": "object",
	"required": ["subject", "body"],
	"properties": {
		"subject": {"type": "string"},
		"body": {"type": "string"}
	}
}`

type greeting struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func TestGenerateStructured_Valid(t *testing.T) {
	mock := &MockClient{Replies: []string{`{"subject": "Hi", "body": "An opportunity."}`}}

	var out greeting
	err := GenerateStructured(context.Background(), mock, "draft a greeting", greetingSchema, TierStandard, &out)
	require.NoError(t, err)
	assert.Equal(t, "Hi", out.Subject)
	assert.Equal(t, "An opportunity.", out.Body)
}

func TestGenerateStructured_SchemaViolation(t *testing.T) {
	mock := &MockClient{Replies: []string{`{"subject": "Hi"}`}}

	var out greeting
	err := GenerateStructured(context.Background(), mock, "draft", greetingSchema, TierStandard, &out)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGenerateStructured_ClientError(t *testing.T) {
	mock := &MockClient{Err: errors.New("unavailable")}

	var out greeting
	err := GenerateStructured(context.Background(), mock, "draft", greetingSchema, TierStandard, &out)
	assert.Error(t, err)
}
