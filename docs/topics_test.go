package docs

import (
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopicsLoad(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}
	if !slices.Contains(topics, "readme") {
		t.Errorf("topics %v missing readme", topics)
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q): %v", topic, err)
		}
		if strings.TrimSpace(content) == "" {
			t.Errorf("topic %q is empty", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*): %v", err)
	}
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	if !strings.Contains(all, readme) {
		t.Error("GetTopics(*) does not contain the readme topic")
	}
}

// TestTopicsStartWithHeading parses every topic and checks it opens with a
// level 1 heading, so the rendered output always has a title.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}
	md := goldmark.New()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q): %v", topic, err)
		}
		source := []byte(content)
		doc := md.Parser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", topic)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with a level %d heading, want 1", topic, heading.Level)
		}
	}
}

// TestReadmeMentionsTopics keeps the readme's topic list in sync with the
// embedded files.
func TestReadmeMentionsTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			continue
		}
		if !strings.Contains(readme, "`"+topic+"`") {
			t.Errorf("readme does not mention topic %q", topic)
		}
	}
}
