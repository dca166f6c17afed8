package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter holds the keys read from a post header.
type frontMatter struct {
	Title     string `yaml:"title"`
	Permalink string `yaml:"permalink"`
	URL       string `yaml:"url"`
	Draft     bool   `yaml:"draft"`
}

// splitFrontMatter separates a leading "---" fenced header from the body.
// Without a closed header the whole input is body.
func splitFrontMatter(content string) (header, body string, ok bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}
	return "", content, false
}

// parseFrontMatter decodes header as YAML.
func parseFrontMatter(header string) (frontMatter, error) {
	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return frontMatter{}, err
	}
	return fm, nil
}
