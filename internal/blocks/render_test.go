package blocks

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  string
	}{
		{
			name:  "paragraph",
			block: Block{ID: "a", Type: TypeParagraph, Data: ParagraphData{Text: "hello"}},
			want:  "<p>hello</p>",
		},
		{
			name:  "heading level 3",
			block: Block{ID: "a", Type: TypeHeading, Data: HeadingData{Level: 3, Text: "section"}},
			want:  "<h3>section</h3>",
		},
		{
			name:  "heading invalid level falls back to 2",
			block: Block{ID: "a", Type: TypeHeading, Data: HeadingData{Level: 7, Text: "x"}},
			want:  "<h2>x</h2>",
		},
		{
			name:  "list",
			block: Block{ID: "a", Type: TypeList, Data: ListData{Items: []string{"one", "two"}}},
			want:  "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name:  "code",
			block: Block{ID: "a", Type: TypeCode, Data: CodeData{Code: "x := 1", Language: "go"}},
			want:  `<pre><code class="language-go">x := 1</code></pre>`,
		},
		{
			name:  "callout",
			block: Block{ID: "a", Type: TypeCallout, Data: CalloutData{Text: "note"}},
			want:  `<aside class="callout">note</aside>`,
		},
		{
			name:  "unknown type renders nothing",
			block: Block{ID: "a", Type: "embed", Data: UnknownData{}},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.block); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	b := Block{ID: "a", Type: TypeParagraph, Data: ParagraphData{Text: `<script>alert("x")</script>`}}

	got := Render(b)
	if strings.Contains(got, "<script>") {
		t.Errorf("Render() did not escape markup: %q", got)
	}
}

func TestRenderAllSkipsUnknown(t *testing.T) {
	bs := []Block{
		{ID: "a", Type: TypeParagraph, Data: ParagraphData{Text: "first"}},
		{ID: "b", Type: "widget", Data: UnknownData{}},
		{ID: "c", Type: TypeParagraph, Data: ParagraphData{Text: "second"}},
	}

	got := RenderAll(bs)
	want := "<p>first</p>\n<p>second</p>"
	if got != want {
		t.Errorf("RenderAll() = %q, want %q", got, want)
	}
}
