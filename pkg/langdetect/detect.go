// Package langdetect guesses a fence tag for code blocks whose opening
// fence carries no info string, so the renderer can still pick a
// highlighter. It uses go-enry plus a few cheap structural checks.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags for commonly pasted snippet kinds.
const (
	tagGo     = "go"
	tagPython = "python"
	tagJSON   = "json"
	tagYAML   = "yaml"
	tagSQL    = "sql"
	tagBash   = "bash"
	tagText   = "text"
)

// classifierCandidates narrows the enry classifier to languages that show
// up in notes in practice; an open-ended candidate set misclassifies short
// snippets badly.
//
//nolint:gochecknoglobals // read-only lookup table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Rust", "C", "SQL", "JSON", "YAML", "HTML", "Markdown",
}

// Detect returns a fence tag for snippet content, or "text" when nothing
// can be said with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return tagText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if tag := detectStructural(content); tag != "" {
		return tag
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return tagText
}

// detectStructural checks a few patterns that identify a snippet outright.
func detectStructural(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) ||
		strings.Contains(text, "func main()") {
		return tagGo
	}

	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return tagJSON
	}

	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return tagPython
	}

	upper := strings.ToUpper(strings.TrimSpace(text))
	if strings.HasPrefix(upper, "SELECT ") || strings.HasPrefix(upper, "INSERT ") ||
		strings.HasPrefix(upper, "CREATE TABLE") {
		return tagSQL
	}

	if looksLikeYAML(content) {
		return tagYAML
	}

	return ""
}

// looksLikeYAML counts root-level key: value pairs and list items.
func looksLikeYAML(content []byte) bool {
	keyCount := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keyCount++
		}
	}
	return keyCount >= 2
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return tagBash
	}
	return strings.ToLower(lang)
}
