package tagger

import "testing"

func TestCategorizeTopics(t *testing.T) {
	tg := New()

	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{"strategy doc", "2025-roadmap.md", "Our strategic vision and objectives for the year.", "Strategy"},
		{"content doc", "editorial-calendar.txt", "Blog post schedule and newsletter drafts.", "Content"},
		{"report doc", "q3-results.pdf", "Performance metrics and conversion analysis.", "Report"},
		{"brief doc", "creative-brief.docx", "Campaign brief and proposal outline.", "Brief"},
		{"no match", "notes.txt", "lorem ipsum dolor sit amet", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tg.Categorize(tt.text, tt.filename)
			if got.Topic != tt.want {
				t.Errorf("Categorize() topic = %q, want %q", got.Topic, tt.want)
			}
		})
	}
}

func TestCategorizeProjects(t *testing.T) {
	tg := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"project x", "Kickoff notes for Project X launch.", "Project X"},
		{"project y", "projecty budget review", "Project Y"},
		{"internal", "Weekly team meeting minutes.", "Internal"},
		{"none", "quarterly numbers look fine", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tg.Categorize(tt.text, "doc.txt")
			if got.Project != tt.want {
				t.Errorf("Categorize() project = %q, want %q", got.Project, tt.want)
			}
		})
	}
}

func TestCategorizeTieBreakOrder(t *testing.T) {
	tg := New()

	// "summary" appears in both Report and Brief keyword lists. With one
	// matching keyword each, Report wins because it is checked first.
	got := tg.Categorize("summary", "doc.txt")
	if got.Topic != "Report" {
		t.Errorf("Categorize() topic = %q, want Report", got.Topic)
	}
}

func TestCategorizeFilenameOnly(t *testing.T) {
	tg := New()

	got := tg.Categorize("", "marketing-strategy-plan.pdf")
	if got.Topic != "Strategy" {
		t.Errorf("Categorize() topic = %q, want Strategy", got.Topic)
	}
}
