package templates

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/Mayi21/tool-sites/internal/form"
)

// layout wraps page content with the shared document chrome.
func layout(title, lang, theme string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n")
		fmt.Fprintf(&b, `<html lang="%s" data-theme="%s">`, templ.EscapeString(lang), templ.EscapeString(theme))
		b.WriteString("<head>")
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(title))
		b.WriteString(`<link rel="stylesheet" href="/static/style.css">`)
		b.WriteString("</head><body>")
		b.WriteString(`<header><nav>`)
		b.WriteString(`<a href="/">Toolbox</a>`)
		b.WriteString(`<a href="/history">History</a>`)
		b.WriteString(`<span class="lang-switch">`)
		b.WriteString(`<a href="/language/zh-hans">中文</a> | <a href="/language/en">EN</a>`)
		b.WriteString(`</span>`)
		b.WriteString(`</nav></header><main>`)
		body(&b)
		b.WriteString("</main></body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Index renders the landing page with the tool list, favorites first.
func Index(data IndexData) templ.Component {
	tools := make([]ToolLink, len(data.Tools))
	copy(tools, data.Tools)
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Favorite && !tools[j].Favorite
	})

	return layout("Toolbox", data.Lang, data.Theme, func(b *strings.Builder) {
		b.WriteString(`<section class="tools"><h1>Tools</h1><ul>`)
		for _, t := range tools {
			cls := ""
			if t.Favorite {
				cls = ` class="favorite"`
			}
			fmt.Fprintf(b, `<li%s><a href="/tools/%s">%s</a></li>`,
				cls, templ.EscapeString(t.Name), templ.EscapeString(t.Title))
		}
		b.WriteString("</ul></section>")

		if len(data.Popular) > 0 {
			b.WriteString(`<section class="popular"><h2>Most used</h2><ol>`)
			for _, p := range data.Popular {
				fmt.Fprintf(b, `<li><a href="/tools/%s">%s</a> <span class="count">%d</span></li>`,
					templ.EscapeString(p.Name), templ.EscapeString(p.Name), p.Count)
			}
			b.WriteString("</ol></section>")
		}

		if len(data.Recent) > 0 {
			b.WriteString(`<section class="recent"><h2>Recent</h2><ul>`)
			for _, h := range data.Recent {
				fmt.Fprintf(b, `<li><span class="tool">%s</span> <span class="when">%s</span><pre>%s</pre></li>`,
					templ.EscapeString(h.ToolName), templ.EscapeString(h.When), templ.EscapeString(h.Preview))
			}
			b.WriteString("</ul></section>")
		}
	})
}

// ToolPage renders a tool's form, echoed values, and result or error.
func ToolPage(data ToolPageData) templ.Component {
	return layout(data.Title, data.Lang, data.Theme, func(b *strings.Builder) {
		fmt.Fprintf(b, `<section class="tool" data-tool="%s">`, templ.EscapeString(data.Name))
		fmt.Fprintf(b, "<h1>%s</h1>", templ.EscapeString(data.Title))

		fav := "☆"
		if data.Favorite {
			fav = "★"
		}
		fmt.Fprintf(b, `<button class="favorite-toggle" data-action="/api/favorites/%s">%s</button>`,
			templ.EscapeString(data.Name), fav)

		if data.Error != "" {
			fmt.Fprintf(b, `<div class="error">%s</div>`, templ.EscapeString(data.Error))
		}

		enc := ""
		for _, f := range data.Fields {
			if f.Kind == form.File {
				enc = ` enctype="multipart/form-data"`
				break
			}
		}
		fmt.Fprintf(b, `<form method="post" action="/tools/%s"%s>`, templ.EscapeString(data.Name), enc)
		for _, f := range data.Fields {
			writeField(b, f, data.Values[f.Name])
		}
		b.WriteString(`<button type="submit">Run</button></form>`)

		if data.Result != nil {
			b.WriteString(`<section class="result"><h2>Result</h2>`)
			keys := make([]string, 0, len(data.Result))
			for k := range data.Result {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(b, `<dl><dt>%s</dt><dd><pre>%s</pre></dd></dl>`,
					templ.EscapeString(k), templ.EscapeString(valueString(data.Result[k])))
			}
			b.WriteString("</section>")
		}
		b.WriteString("</section>")
	})
}

func writeField(b *strings.Builder, f form.Field, value any) {
	name := templ.EscapeString(f.Name)
	fmt.Fprintf(b, `<label for="%s">%s</label>`, name, name)

	switch f.Kind {
	case form.Text:
		fmt.Fprintf(b, `<textarea id="%s" name="%s">%s</textarea>`,
			name, name, templ.EscapeString(valueString(value)))
	case form.Int:
		attrs := ""
		if f.Max != 0 {
			attrs = fmt.Sprintf(` min="%d" max="%d"`, f.Min, f.Max)
		}
		fmt.Fprintf(b, `<input type="number" id="%s" name="%s" value="%s"%s>`,
			name, name, templ.EscapeString(valueString(value)), attrs)
	case form.Bool:
		checked := ""
		if on, _ := value.(bool); on {
			checked = " checked"
		}
		fmt.Fprintf(b, `<input type="checkbox" id="%s" name="%s" value="1"%s>`, name, name, checked)
	case form.Choice:
		fmt.Fprintf(b, `<select id="%s" name="%s">`, name, name)
		selected := valueString(value)
		for _, c := range f.Choices {
			sel := ""
			if c == selected {
				sel = " selected"
			}
			fmt.Fprintf(b, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(c), sel, templ.EscapeString(c))
		}
		b.WriteString("</select>")
	case form.File:
		fmt.Fprintf(b, `<input type="file" id="%s" name="%s">`, name, name)
	}
}

// HistoryPage renders the session's recent invocations.
func HistoryPage(data HistoryPageData) templ.Component {
	return layout("History", data.Lang, data.Theme, func(b *strings.Builder) {
		b.WriteString(`<section class="history"><h1>History</h1>`)
		if len(data.Items) == 0 {
			b.WriteString(`<p class="empty">No history yet.</p>`)
		} else {
			b.WriteString("<ul>")
			for _, h := range data.Items {
				fmt.Fprintf(b, `<li><a href="/tools/%s">%s</a> <span class="when">%s</span><pre>%s</pre></li>`,
					templ.EscapeString(h.ToolName), templ.EscapeString(h.ToolName),
					templ.EscapeString(h.When), templ.EscapeString(h.Preview))
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</section>")
	})
}
