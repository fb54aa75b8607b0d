package validation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name   string   `json:"name" validate:"min=2"`
	Email  string   `json:"email" validate:"required,email"`
	Plan   string   `json:"plan" validate:"omitempty,oneof=basic premium"`
	Rating *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func TestStruct_ListsEveryField(t *testing.T) {
	v := New()
	bad := 7.0
	err := v.Struct(signup{Name: "J", Email: "nope", Plan: "gold", Rating: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"name", "email", "plan", "rating"}, fields)
	assert.Equal(t, "name must be at least 2 characters", verrs[0].Message)
	assert.Equal(t, "Invalid email address", verrs[1].Message)
	assert.Equal(t, "plan must be one of: basic, premium", verrs[2].Message)
	assert.Equal(t, "rating must be at most 5", verrs[3].Message)
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(signup{Name: "Jo", Email: "jo@example.com"}))
}

func TestVar(t *testing.T) {
	v := New()
	err := v.Var("status", "archived", "oneof=new read")
	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "status", verrs[0].Field)
	assert.NoError(t, v.Var("status", "new", "oneof=new read"))
}
