// Package page pulls light document metadata out of fetched markup for
// logging and the run manifest.
package page

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Headline returns the page title, preferring the og:title meta property over
// the <title> element since article pages often decorate the latter with the
// site name. Returns "" when neither is present or the markup fails to parse.
func Headline(markup []byte) string {
	node, err := html.Parse(bytes.NewReader(markup))
	if err != nil || node == nil {
		return ""
	}
	head := findFirst(node, "head")
	if head == nil {
		return ""
	}
	if og := strings.TrimSpace(findMetaProperty(head, "og:title")); og != "" {
		return collapseSpaces(og)
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return collapseSpaces(strings.TrimSpace(t.FirstChild.Data))
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func findMetaProperty(head *html.Node, property string) string {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !strings.EqualFold(c.Data, "meta") {
			continue
		}
		var prop, content string
		for _, a := range c.Attr {
			switch strings.ToLower(a.Key) {
			case "property", "name":
				prop = strings.ToLower(a.Val)
			case "content":
				content = a.Val
			}
		}
		if prop == property {
			return content
		}
	}
	return ""
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
