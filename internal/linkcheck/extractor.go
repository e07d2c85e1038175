package linkcheck

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
)

// linkPattern matches `[text](target)` non-greedily and captures target.
// `.` never crosses a newline, so a link must sit on one line.
var linkPattern = regexp.MustCompile(`\[.*?\]\((.*?)\)`)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// newlineReplacer folds CRLF and lone CR line endings into LF.
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ExtractLinks reads filePath and returns every markdown link target in
// order of appearance. The file must be valid UTF-8.
func ExtractLinks(filePath string) ([]string, error) {
	// #nosec G304 -- filePath comes from the directory walk or the caller
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, cerrors.ReadFailed(filePath, err)
	}
	if !utf8.Valid(content) {
		return nil, cerrors.ReadFailed(filePath, errInvalidUTF8)
	}
	return extractLinks(string(content)), nil
}

// extractLinks returns the captured targets of all link constructs in content.
func extractLinks(content string) []string {
	content = newlineReplacer.Replace(content)

	matches := linkPattern.FindAllStringSubmatch(content, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, m[1])
	}
	return links
}
