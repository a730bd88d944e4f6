package subtitle

import (
	"fmt"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
)

// cuePattern matches one SRT block: sequence number, timing line, then the
// cue text up to the blank separator line. Singleline mode lets the lazy
// group span multi-line cues.
var cuePattern = regexp2.MustCompile(
	`\d+\n\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}\n(.*?)\n\n`,
	regexp2.Singleline,
)

// ExtractText reads an .srt file and returns the cue text with sequence
// numbers and timing lines stripped, cues joined by newlines.
func ExtractText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}

	return Strip(string(raw)), nil
}

// Strip removes SRT structure from content, returning only the cue text.
func Strip(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// a final cue without a trailing blank line would otherwise be dropped
	if !strings.HasSuffix(content, "\n\n") {
		content += "\n\n"
	}

	var cues []string

	m, err := cuePattern.FindStringMatch(content)
	for err == nil && m != nil {
		cues = append(cues, m.GroupByNumber(1).String())
		m, err = cuePattern.FindNextMatch(m)
	}

	return strings.Join(cues, "\n")
}
