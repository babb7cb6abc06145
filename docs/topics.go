// Package docs embeds the user manual topics shipped with the bank tool.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of a single documentation topic.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of the given topics concatenated together. A
// "*" entry expands to every available topic.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		if name == "*" {
			all, err := AllTopics()
			if err != nil {
				return "", err
			}
			content, err := Topics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics returns the sorted list of available documentation topics.
func AllTopics() ([]string, error) {
	var topics []string
	err := fs.WalkDir(docs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		topics = append(topics, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(topics)
	return topics, nil
}
