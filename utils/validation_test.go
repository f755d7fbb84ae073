package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Score  *float64 `json:"score" validate:"required,gte=0,lte=4"`
	Status string   `json:"status" validate:"required,oneof=open closed"`
}

func TestValidate_UsesJSONNames(t *testing.T) {
	score := 4.5
	verr := Validate(sampleInput{Name: "toolongname", Score: &score, Status: "pending"})
	require.Len(t, verr.Fields, 3)

	byField := map[string]string{}
	for _, f := range verr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be at most 5", byField["name"])
	assert.Equal(t, "must be at most 4", byField["score"])
	assert.Equal(t, "must be one of: open, closed", byField["status"])
}

func TestValidate_RequiredPointer(t *testing.T) {
	verr := Validate(sampleInput{Name: "a", Status: "open"})
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{Field: "score", Message: "is required"}, verr.Fields[0])
}

func TestValidationError_Helpers(t *testing.T) {
	score := 1.0
	verr := Validate(sampleInput{Name: "ok", Score: &score, Status: "open"})
	assert.NoError(t, verr.OrNil())
	assert.False(t, verr.Has("name"))

	verr.Add("name", "taken")
	assert.True(t, verr.Has("name"))
	err := verr.OrNil()
	require.Error(t, err)
	assert.Equal(t, "validation failed: name: taken", err.Error())

	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())
}
