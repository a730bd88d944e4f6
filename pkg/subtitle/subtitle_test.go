package subtitle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Hello there.

2
00:00:04,500 --> 00:00:07,250
This cue spans
two lines.

3
00:01:00,000 --> 00:01:02,000
Goodbye.

`

func TestStrip(t *testing.T) {
	text := Strip(sampleSRT)
	assert.Equal(t, "Hello there.\nThis cue spans\ntwo lines.\nGoodbye.", text)
}

func TestStrip_NoTrailingBlankLine(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nFinal cue without separator"
	assert.Equal(t, "Final cue without separator", Strip(content))
}

func TestStrip_CRLF(t *testing.T) {
	content := "1\r\n00:00:01,000 --> 00:00:02,000\r\nWindows line endings\r\n\r\n"
	assert.Equal(t, "Windows line endings", Strip(content))
}

func TestStrip_Empty(t *testing.T) {
	assert.Equal(t, "", Strip(""))
}

func TestStrip_PlainTextWithoutCues(t *testing.T) {
	assert.Equal(t, "", Strip("just some text\nwith no srt structure\n"))
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello there.")
	assert.NotContains(t, text, "-->")
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.srt"))
	assert.Error(t, err)
}
