package ctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)

	parent := Background()
	child := WithValue(parent, "offerId", 42)

	req.Equal(42, child.Value("offerId"))
	req.Nil(parent.Value("offerId"))
}

func TestWithValues(t *testing.T) {
	req := require.New(t)

	c := WithValues(Background(), map[string]interface{}{
		"sender": "user",
		"denom":  "SEI",
	})

	req.Equal("user", c.Value("sender"))
	req.Equal("SEI", c.Value("denom"))
}
