package services

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var htmlTagRe = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)

// looksLikeHTML reports whether pasted text carries markup. Tender text is
// often pasted straight from portal pages and mail clients.
func looksLikeHTML(input string) bool {
	return htmlTagRe.MatchString(input)
}

// flattenHTML converts pasted HTML to plain text before it reaches the model.
func flattenHTML(htmlContent string) string {
	// Parse the HTML
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		// If parsing fails, return the original content
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			// Add line breaks for block elements
			switch n.Data {
			case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6":
				text.WriteString("\n")
			case "li":
				text.WriteString("- ")
			case "table":
				text.WriteString("\n")
			case "tr":
				text.WriteString("\n")
			case "td", "th":
				text.WriteString(" | ")
			case "script", "style":
				return
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			extractText(child)
		}
	}

	extractText(doc)

	result := text.String()
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	result = strings.TrimSpace(result)

	return result
}

// PrepareText normalizes pasted tender or rate text for extraction.
func PrepareText(input string) string {
	input = strings.TrimSpace(input)
	if looksLikeHTML(input) {
		return flattenHTML(input)
	}
	return input
}
