// Package tagger assigns topic and project tags to documents using
// keyword matching over the filename and text. It is a zero-cost fallback
// for uploads that arrive untagged; user-supplied tags always win.
package tagger

import "strings"

// Tags holds the categorization outcome. Empty fields mean no rule matched.
type Tags struct {
	Topic   string
	Project string
}

// topicOrder fixes the tie-break: when two topics score equally, the one
// listed first wins.
var topicOrder = []string{"Strategy", "Content", "Report", "Brief"}

var topicKeywords = map[string][]string{
	"Strategy": {
		"strategy", "strategic", "plan", "planning", "roadmap", "vision",
		"objective", "goal", "mission", "approach", "framework", "methodology",
	},
	"Content": {
		"content", "blog", "post", "article", "calendar", "schedule",
		"editorial", "publishing", "social media", "social", "campaign",
		"email", "newsletter", "draft", "writing",
	},
	"Report": {
		"report", "results", "performance", "metrics", "analytics", "data",
		"analysis", "summary", "findings", "insights", "quarterly", "q1", "q2",
		"q3", "q4", "roi", "conversion", "engagement", "campaign results",
	},
	"Brief": {
		"brief", "briefing", "overview", "summary", "outline", "proposal",
		"project brief", "campaign brief", "creative brief",
	},
}

var projectKeywords = []struct {
	name     string
	keywords []string
}{
	{"Project X", []string{"project x", "projectx", "proj x", "projx"}},
	{"Project Y", []string{"project y", "projecty", "proj y", "projy"}},
	{"Internal", []string{"internal", "team", "meeting"}},
}

// Tagger is stateless; the zero value is usable.
type Tagger struct{}

// New creates a Tagger.
func New() *Tagger {
	return &Tagger{}
}

// Categorize scores the document text and filename against the keyword
// tables and returns the best-matching topic and project.
func (t *Tagger) Categorize(text, filename string) Tags {
	combined := strings.ToLower(filename) + " " + strings.ToLower(text)

	var tags Tags

	bestScore := 0
	for _, topic := range topicOrder {
		score := 0
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			tags.Topic = topic
		}
	}

	for _, p := range projectKeywords {
		for _, kw := range p.keywords {
			if strings.Contains(combined, kw) {
				tags.Project = p.name
				break
			}
		}
		if tags.Project != "" {
			break
		}
	}

	return tags
}
