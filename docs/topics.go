// Package docs embeds the user documentation served by the topic
// subcommand, so the binary is self-contained.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topics lists every available topic name. The readme is the index
// page, not a topic. Names come back sorted, matching the embedded
// directory order.
func Topics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	return topics, nil
}

// GetTopic returns the content of one documentation topic. The "*"
// wildcard expands to every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := Topics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of the named topics, wildcards
// included.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
