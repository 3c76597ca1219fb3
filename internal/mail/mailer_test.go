package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villagemart/internal/domain/notification"
)

func TestDisabledTransportReturnsFalse(t *testing.T) {
	m := New(Config{}, zerolog.Nop())

	sent := m.SendRestockEmail(context.Background(), notification.RestockEmail{
		To:          "anita@example.com",
		ProductName: "Paneer 500g",
	})
	assert.False(t, sent)
}

func TestRenderRestockBody(t *testing.T) {
	body, err := renderRestockBody(notification.RestockEmail{
		To:          "anita@example.com",
		Name:        "Anita",
		ProductName: "Paneer 500g",
		Price:       180,
		Stock:       5,
		Link:        "http://localhost:5173/product/12",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Anita,")
	assert.Contains(t, body, "<h2>Paneer 500g</h2>")
	assert.Contains(t, body, "&#8377;180.00")
	assert.Contains(t, body, "5 units")
	assert.Contains(t, body, `href="http://localhost:5173/product/12"`)
}

func TestRenderRestockBodyEscapesProductName(t *testing.T) {
	body, err := renderRestockBody(notification.RestockEmail{
		Name:        "Anita",
		ProductName: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(body, "<script>alert"))
}
