package mailing

import (
	"bytes"
	"os"
	"testing"

	"nutrition-tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBodyEscapes(t *testing.T) {
	assert.Equal(t,
		`<pre style="font-family: monospace">a &lt; b &amp; c</pre>`,
		ReportBody("a < b & c"),
	)
}

func TestNewMessageHeaders(t *testing.T) {
	msg := NewMessage(MailConfig{SMTPEmail: "bot@example.com", SMTPSender: "Nutrition Tracker"},
		"me@example.com", "Import report", ReportBody("ok"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "To: me@example.com")
	assert.Contains(t, out, "Subject: Import report")
	assert.Contains(t, out, "bot@example.com")
}

func TestSendReportRequiresConfig(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SMTP_HOST", "")
	t.Setenv("REPORT_EMAIL", "")
	utils.LoadConfig()

	assert.False(t, LoadMailConfig().Enabled())
	assert.ErrorIs(t, SendReport("subject", "body"), ErrMailNotConfigured)
}

func TestSendMailInvalidPort(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SMTP_HOST", "localhost")
	t.Setenv("SMTP_PORT", "smtp")
	utils.LoadConfig()

	err := SendMail("me@example.com", "subject", "body")
	assert.ErrorContains(t, err, "invalid SMTP_PORT")
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
