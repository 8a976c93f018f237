package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lysyi3m/podcast-rss/app/podcast"
)

const feedXML = `<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>CLI Show</title>
    <link>https://example.com</link>
    <description>Parsed from the command line</description>
    <language>de</language>
    <item><title>One</title><content:encoded>&lt;p&gt;Hi&lt;/p&gt;</content:encoded></item>
    <item><title>Two</title></item>
  </channel>
</rss>`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(feedXML), 0644))

	code, stdout, stderr := runCLI(t, "", path)
	require.Equal(t, exitOK, code, stderr)

	var result podcast.Podcast
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "CLI Show", result.Title)
	require.Len(t, result.Episodes, 2)
	require.NotNil(t, result.Episodes[0].Content)
	assert.Equal(t, "<p>Hi</p>", result.Episodes[0].Content.Encoded)
}

func TestParseStdinWithLimit(t *testing.T) {
	code, stdout, _ := runCLI(t, feedXML, "--compact", "--max-episodes", "1", "-")
	require.Equal(t, exitOK, code)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))

	var result podcast.Podcast
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.Episodes, 1)
}

func TestParseURL(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.UserAgent()
		_, _ = w.Write([]byte(feedXML))
	}))
	defer server.Close()

	code, stdout, _ := runCLI(t, "", "--url", server.URL, "--user-agent", "podparse-test")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "CLI Show")
	assert.Equal(t, "podparse-test", userAgent)
}

func TestExitCodes(t *testing.T) {
	code, _, stderr := runCLI(t, `<rss version="2.0"><channel><title>Only title</title></channel></rss>`)
	assert.Equal(t, exitIncomplete, code)
	assert.Contains(t, stderr, "feed lacks")

	code, _, _ = runCLI(t, `{"not": "xml"}`)
	assert.Equal(t, exitError, code)

	code, _, _ = runCLI(t, "", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Equal(t, exitError, code)

	code, _, _ = runCLI(t, "", "--url", "https://example.com/feed.xml", "feed.xml")
	assert.Equal(t, exitError, code)

	code, _, _ = runCLI(t, "", "--no-such-flag")
	assert.Equal(t, exitError, code)

	code, stdout, _ := runCLI(t, "", "--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "--max-episodes")
}
