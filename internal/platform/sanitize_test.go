package platform

import "testing"

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"headings", "# Title\n### Section\nBody", "Title\nSection\nBody"},
		{"bold", "The **key** idea", "The key idea"},
		{"bullets", "- first\n* second\n  - nested", "• first\n• second\n• nested"},
		{"html formatting removed", "<b>VPC</b> & subnets", "VPC & subnets"},
		{"generics kept", "## Collections\n- Use **List<String>** for names", "Collections\n• Use List<String> for names"},
		{"blank runs collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanSummary(tt.input); got != tt.expected {
				t.Errorf("CleanSummary(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"generics", "Use List<String> to hold names", "Use List<String> to hold names"},
		{"comparisons", "if a<b && c>d then swap", "if a<b && c>d then swap"},
		{"template argument", "Vector<int> grows on demand", "Vector<int> grows on demand"},
		{"quoted markup", "<script>alert(1)</script> is an XSS example", "<script>alert(1)</script> is an XSS example"},
		{"entities left alone", "AT&amp;T", "AT&amp;T"},
		{"trimmed", "  TCP is reliable  ", "TCP is reliable"},
		{"inline formatting", "  <i>JWT</i> vs \"OAuth2\"  ", `JWT vs "OAuth2"`},
		{"formatting with generics", "<p>Use List<String> here</p>", "Use List<String> here"},
		{"formatting with quoted script", "<b>XSS</b>: <script>alert(1)</script>", "XSS: <script>alert(1)</script>"},
		{"line breaks", "first<br>second<br/>third", "first\nsecond\nthird"},
		{"list items", "<ul><li>One</li><li>Two</li></ul>", "• One\n• Two"},
		{"headings and paragraphs", "<h2>Joins</h2><p>Inner &amp; outer</p>", "Joins\nInner & outer"},
		{"attributes", `<a href="https://example.com">docs</a>`, "docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
