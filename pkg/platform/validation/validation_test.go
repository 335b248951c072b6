package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name  string `json:"name" validate:"required,max=8"`
	Grade string `json:"grade" validate:"required"`
}

type pairRequest struct {
	Period string `json:"period" validate:"required,oneof=morning afternoon evening"`
	First  person `json:"participant_a"`
	Second person `json:"participant_b"`
	Note   string `json:"-" validate:"max=2"`
}

func TestStruct(t *testing.T) {
	t.Run("valid input returns nil", func(t *testing.T) {
		err := Struct(pairRequest{
			Period: "morning",
			First:  person{Name: "Ana", Grade: "9"},
			Second: person{Name: "Bia", Grade: "9"},
		})
		assert.NoError(t, err)
	})

	t.Run("every violation is returned", func(t *testing.T) {
		err := Struct(pairRequest{Period: "night", First: person{Name: "Ana"}})
		require.Error(t, err)

		ve, ok := AsErrors(err)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{
			"period",
			"participant_a.grade",
			"participant_b.name",
			"participant_b.grade",
		}, ve.Fields())
		assert.True(t, ve.Has("period"))
		assert.Contains(t, err.Error(), "participant_b.name: is required")
	})

	t.Run("max length message", func(t *testing.T) {
		err := Struct(pairRequest{
			Period: "evening",
			First:  person{Name: "Bartholomew", Grade: "1"},
			Second: person{Name: "Bia", Grade: "1"},
		})
		ve, ok := AsErrors(err)
		require.True(t, ok)
		require.Len(t, ve, 1)
		assert.Equal(t, "participant_a.name", ve[0].Field)
		assert.Equal(t, "must be at most 8 characters", ve[0].Message)
	})
}

func TestErrors(t *testing.T) {
	var ve Errors
	assert.NoError(t, ve.Err())

	ve.Add("period", "does not match committee")
	err := fmt.Errorf("claim: %w", ve.Err())

	got, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"period"}, got.Fields())
	assert.False(t, errors.Is(err, errors.New("other")))
}
