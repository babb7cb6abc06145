package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopicsRetrievable(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics embedded")
	}
	for _, topic := range topics {
		if _, err := Topic(topic); err != nil {
			t.Errorf("Topic(%q) returned an unexpected error: %v", topic, err)
		}
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Fatal("Topic() with an unknown name must fail")
	}
}

func TestTopics_Star(t *testing.T) {
	all, err := Topics("*")
	if err != nil {
		t.Fatal(err)
	}
	readme, err := Topic("readme")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(all, readme) {
		t.Error("Topics(\"*\") must include every topic")
	}
}

// Every topic must be well-formed markdown opening with a level-1 heading,
// so the terminal renderer always has a title to show.
func TestTopicsStartWithTitle(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	parser := goldmark.New().Parser()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			if err != nil {
				t.Fatal(err)
			}
			root := parser.Parse(text.NewReader([]byte(content)))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading, got %T", topic, first)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q opens with a level-%d heading, want level 1", topic, heading.Level)
			}
		})
	}
}
