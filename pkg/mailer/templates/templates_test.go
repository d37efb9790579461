package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-signup/config"
)

func testConfig() *config.Config {
	return &config.Config{AppName: "Auth", LoginURL: "http://localhost/login"}
}

func TestRender_Welcome(t *testing.T) {
	data := NewWelcomeData(testConfig(), "Thiago", "thdq", "_valid@email.com")

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Auth, Thiago", subject)
	assert.Contains(t, text, `username "thdq"`)
	assert.Contains(t, text, "http://localhost/login")
	assert.Contains(t, html, "<strong>thdq</strong>")
}

func TestRender_LoginNotificationEscapesHTML(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	data := NewLoginNotificationData(testConfig(), "Thiago", "thdq", "_valid@email.com",
		WithTime(at), WithIP("1.2.3.4"), WithUserAgent("<script>"))

	subject, text, html, err := Render(LoginNotification, data)
	require.NoError(t, err)
	assert.Equal(t, "New login to your Auth account", subject)
	assert.Contains(t, text, "01 January 2024, 10:00")
	assert.Contains(t, text, "Location: unknown")
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, "v", defaultFn("x", "v"))
}
