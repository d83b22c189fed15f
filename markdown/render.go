package markdown

import "regexp"

// Placeholder is returned by Render when the transform produces no markup.
const Placeholder = "<p>Preview will appear here...</p>"

// Line terminators recognized by the line-anchored rules. Inline rules never
// match across any of them.
const (
	term    = `\r\n\x{2028}\x{2029}`
	notTerm = `[^` + term + `]`
	bol     = `(^|[` + term + `])`
)

type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// lineRule matches prefix at the start of a line and wraps the rest of that
// line in tag. The captured terminator in front of the line is written back
// unchanged.
func lineRule(name, prefix, tag string) rule {
	return rule{
		name: name,
		re:   regexp.MustCompile(bol + regexp.QuoteMeta(prefix) + `(` + notTerm + `*)`),
		repl: `${1}<` + tag + `>${2}</` + tag + `>`,
	}
}

// spanRule matches the shortest run between a pair of delim on one line.
func spanRule(name, delim, tag string) rule {
	d := regexp.QuoteMeta(delim)
	return rule{
		name: name,
		re:   regexp.MustCompile(d + `(` + notTerm + `*?)` + d),
		repl: `<` + tag + `>${1}</` + tag + `>`,
	}
}

var rules = []rule{
	lineRule("h3", "### ", "h3"),
	lineRule("h2", "## ", "h2"),
	lineRule("h1", "# ", "h1"),
	spanRule("bold", "**", "strong"),
	spanRule("italic", "*", "em"),
	spanRule("strike", "~~", "s"),
	spanRule("code", "`", "code"),
	lineRule("quote", "> ", "blockquote"),
	lineRule("list", "- ", "li"),
	{name: "break", re: regexp.MustCompile(`\r\n|\r|\n`), repl: "<br>"},
}

// Render converts text to preview HTML. It never fails: unmatched or
// unterminated delimiters are left in place as literal characters.
func Render(text string) string {
	html := text
	for _, r := range rules {
		html = r.re.ReplaceAllString(html, r.repl)
	}
	if html == "" {
		return Placeholder
	}
	return html
}

// Rules returns the rule names in application order.
func Rules() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.name
	}
	return out
}
