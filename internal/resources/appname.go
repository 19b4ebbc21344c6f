// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package resources

import (
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html"
)

// AppName returns the value of the "app_name" string resource defined in
// the strings.xml file at path, or an empty string if there is none.
func AppName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	root, err := parseXML(b)
	if err != nil {
		return "", err
	}
	doc := goquery.NewDocumentFromNode(root)
	return strings.TrimSpace(doc.Find(`string[name="app_name"]`).First().Text()), nil
}

// parseXML builds a node tree that goquery can query. The HTML parser
// goquery uses by default treats self-closing tags as open ones and nests
// the following siblings inside them.
func parseXML(b []byte) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	cur := root
	inPI := false // inside <?xml ... ?>

	l := xml.NewLexer(parse.NewInputBytes(b))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, err
			}
			return root, nil
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.StartTagToken:
			n := &html.Node{Type: html.ElementNode, Data: string(l.Text())}
			cur.AppendChild(n)
			cur = n
		case xml.AttributeToken:
			if inPI {
				continue
			}
			cur.Attr = append(cur.Attr, html.Attribute{
				Key: string(l.Text()),
				Val: html.UnescapeString(unquote(l.AttrVal())),
			})
		case xml.StartTagCloseVoidToken, xml.EndTagToken:
			if cur.Parent != nil {
				cur = cur.Parent
			}
		case xml.TextToken:
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: html.UnescapeString(string(l.Text()))})
		case xml.CDATAToken:
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: string(l.Text())})
		}
	}
}

func unquote(b []byte) string {
	if n := len(b); n >= 2 && (b[0] == '"' || b[0] == '\'') && b[n-1] == b[0] {
		return string(b[1 : n-1])
	}
	return string(b)
}
