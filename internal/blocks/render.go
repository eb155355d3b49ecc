package blocks

import (
	"fmt"
	"html/template"
	"strings"
)

// Render converts a single block to an HTML fragment. Unknown block
// types render as the empty string so newer content degrades silently
// instead of failing the whole post.
func Render(b Block) string {
	switch d := b.Data.(type) {
	case ParagraphData:
		return fmt.Sprintf("<p>%s</p>", template.HTMLEscapeString(d.Text))
	case HeadingData:
		level := d.Level
		if level != 2 && level != 3 {
			level = 2
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, template.HTMLEscapeString(d.Text), level)
	case ListData:
		var sb strings.Builder
		sb.WriteString("<ul>")
		for _, item := range d.Items {
			sb.WriteString("<li>")
			sb.WriteString(template.HTMLEscapeString(item))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
		return sb.String()
	case CodeData:
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
			template.HTMLEscapeString(d.Language), template.HTMLEscapeString(d.Code))
	case CalloutData:
		return fmt.Sprintf(`<aside class="callout">%s</aside>`, template.HTMLEscapeString(d.Text))
	default:
		return ""
	}
}

// RenderAll renders blocks in order, skipping unknown types.
func RenderAll(bs []Block) string {
	var sb strings.Builder
	for _, b := range bs {
		fragment := Render(b)
		if fragment == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fragment)
	}
	return sb.String()
}
