package mindmap

import "testing"

func TestCodeBlockBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fence with language tag",
			in:   "```mermaid\nmindmap\n  Root\n```",
			want: "mindmap\n  Root",
		},
		{
			name: "bare fence",
			in:   "```\nmindmap\n  Root\n```",
			want: "mindmap\n  Root",
		},
		{
			name: "prose around the fence",
			in:   "Here is the diagram:\n```mermaid\nmindmap\n```\nHope it helps!",
			want: "mindmap",
		},
		{
			name: "no fence returns input unchanged",
			in:   "mindmap\n  Root\n    A",
			want: "mindmap\n  Root\n    A",
		},
		{
			name: "unclosed fence returns input unchanged",
			in:   "```mermaid\nmindmap\n  Root",
			want: "```mermaid\nmindmap\n  Root",
		},
		{
			name: "empty block",
			in:   "```\n```",
			want: "",
		},
		{
			name: "indented fence lines",
			in:   "  ```mermaid\nmindmap\n  ```",
			want: "mindmap",
		},
		{
			name: "backticks mid-line are not a fence",
			in:   "use ```code``` spans\nfreely",
			want: "use ```code``` spans\nfreely",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeBlockBody(tt.in); got != tt.want {
				t.Errorf("CodeBlockBody(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Round-trip: wrapping arbitrary content in a tagged fence and
// extracting must return exactly the inner content.
func TestCodeBlockBodyRoundTrip(t *testing.T) {
	inner := "mindmap\n  root((topic))\n    First\n    Second"
	wrapped := "```mermaid\n" + inner + "\n```"
	if got := CodeBlockBody(wrapped); got != inner {
		t.Errorf("round trip = %q, want %q", got, inner)
	}
}
