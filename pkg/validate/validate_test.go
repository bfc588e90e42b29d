package validate_test

import (
	"errors"
	"testing"

	"github.com/Astemirdum/bookhaven/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		Title  string `json:"title" validate:"required"`
		Author string `json:"author" validate:"required"`
		Notes  string `json:"notes"`
	}
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(req{Title: "Dune", Author: "Frank Herbert"}))

	err := v.Validate(req{Title: "Dune"})
	require.Error(t, err)
	require.Equal(t, []string{"author"}, validate.MissingFields(err))

	err = v.Validate(req{})
	require.Equal(t, []string{"title", "author"}, validate.MissingFields(err))

	require.Nil(t, validate.MissingFields(errors.New("other")))
}
