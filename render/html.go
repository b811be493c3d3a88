// Package render converts rich document bodies fetched from the content
// store into HTML. Documents are ordered sequences of typed nodes (text
// blocks, list items, images, code and math embeds); anything unrecognized or
// malformed is skipped so a bad node never takes down the whole page.
package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Node is one entry of a rich document. It keeps the raw JSON alongside the
// type discriminator so each kind can be decoded by its own handler.
type Node struct {
	Type string
	raw  json.RawMessage
}

// Document is the body of a project or post.
type Document []Node

func (n *Node) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"_type"`
	}
	// A node that is not even an object gets an empty type and is skipped
	// at render time.
	_ = json.Unmarshal(data, &head)
	n.Type = head.Type
	n.raw = append(n.raw[:0], data...)
	return nil
}

func (n Node) MarshalJSON() ([]byte, error) {
	if n.raw == nil {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// ImageSource resolves an opaque asset reference to a fetchable URL.
// An empty return means the image cannot be resolved and is skipped.
type ImageSource interface {
	ImageURL(ref string, width, quality int) string
}

// HTMLRenderer walks a Document and emits HTML.
type HTMLRenderer struct {
	images ImageSource
}

// NewHTMLRenderer creates a renderer. images may be nil, in which case image
// nodes are skipped.
func NewHTMLRenderer(images ImageSource) *HTMLRenderer {
	return &HTMLRenderer{images: images}
}

const (
	bodyImageWidth   = 1200
	bodyImageQuality = 90
)

type textBlock struct {
	Style    string    `json:"style"`
	ListItem string    `json:"listItem"`
	Children []span    `json:"children"`
	MarkDefs []markDef `json:"markDefs"`
}

type span struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type markDef struct {
	Key   string `json:"_key"`
	Type  string `json:"_type"`
	Href  string `json:"href"`
	Blank bool   `json:"blank"`
}

type imageNode struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Caption string `json:"caption"`
	Alt     string `json:"alt"`
}

type codeNode struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type latexNode struct {
	Body string `json:"body"`
}

// Render produces the HTML for a whole document. Consecutive list items of
// the same kind are grouped under a single list container.
func (r *HTMLRenderer) Render(doc Document) string {
	var b strings.Builder

	for i := 0; i < len(doc); i++ {
		node := doc[i]

		if node.Type == "block" {
			var blk textBlock
			if err := json.Unmarshal(node.raw, &blk); err != nil {
				continue
			}
			if blk.ListItem != "" {
				i = r.renderList(&b, doc, i, blk)
				continue
			}
			r.renderBlock(&b, blk)
			continue
		}

		switch node.Type {
		case "image":
			r.renderImage(&b, node.raw)
		case "code":
			r.renderCode(&b, node.raw)
		case "latex":
			r.renderLatex(&b, node.raw)
		default:
			// Unknown node kinds are skipped.
		}
	}
	return b.String()
}

// renderList consumes the run of consecutive list items starting at index i
// that share the first item's list kind, and returns the index of the last
// item consumed.
func (r *HTMLRenderer) renderList(b *strings.Builder, doc Document, i int, first textBlock) int {
	tag := "ul"
	if first.ListItem == "number" {
		tag = "ol"
	}

	fmt.Fprintf(b, "<%s>", tag)
	b.WriteString("<li>")
	b.WriteString(r.renderSpans(first.Children, first.MarkDefs))
	b.WriteString("</li>")

	last := i
	for j := i + 1; j < len(doc); j++ {
		if doc[j].Type != "block" {
			break
		}
		var blk textBlock
		if err := json.Unmarshal(doc[j].raw, &blk); err != nil {
			break
		}
		if blk.ListItem != first.ListItem {
			break
		}
		b.WriteString("<li>")
		b.WriteString(r.renderSpans(blk.Children, blk.MarkDefs))
		b.WriteString("</li>")
		last = j
	}
	fmt.Fprintf(b, "</%s>", tag)
	return last
}

func (r *HTMLRenderer) renderBlock(b *strings.Builder, blk textBlock) {
	inner := r.renderSpans(blk.Children, blk.MarkDefs)

	switch blk.Style {
	case "h2", "h3", "h4":
		fmt.Fprintf(b, "<%s>%s</%s>", blk.Style, inner, blk.Style)
	case "blockquote":
		fmt.Fprintf(b, "<blockquote>%s</blockquote>", inner)
	default:
		// "normal" and any unrecognized style render as a paragraph.
		fmt.Fprintf(b, "<p>%s</p>", inner)
	}
}

func (r *HTMLRenderer) renderSpans(children []span, defs []markDef) string {
	var b strings.Builder
	for _, s := range children {
		b.WriteString(r.renderSpan(s, defs))
	}
	return b.String()
}

func (r *HTMLRenderer) renderSpan(s span, defs []markDef) string {
	out := html.EscapeString(s.Text)
	for _, mark := range s.Marks {
		switch mark {
		case "strong":
			out = "<strong>" + out + "</strong>"
		case "em":
			out = "<em>" + out + "</em>"
		case "code":
			out = "<code>" + out + "</code>"
		default:
			if def, ok := findMarkDef(defs, mark); ok && def.Type == "link" {
				out = renderLink(out, def)
			}
			// Marks without a matching definition are dropped; the text
			// still renders.
		}
	}
	return out
}

func findMarkDef(defs []markDef, key string) (markDef, bool) {
	for _, def := range defs {
		if def.Key == key {
			return def, true
		}
	}
	return markDef{}, false
}

func renderLink(inner string, def markDef) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` href=%q`, def.Href)
	// External targets get the referrer/opener safety attributes; same-site
	// relative paths do not.
	if !strings.HasPrefix(def.Href, "/") {
		attrs.WriteString(` rel="noreferrer noopener"`)
	}
	if def.Blank {
		attrs.WriteString(` target="_blank"`)
	}
	return fmt.Sprintf("<a%s>%s</a>", attrs.String(), inner)
}

func (r *HTMLRenderer) renderImage(b *strings.Builder, raw json.RawMessage) {
	var img imageNode
	if err := json.Unmarshal(raw, &img); err != nil {
		return
	}
	if img.Asset.Ref == "" || r.images == nil {
		return
	}
	url := r.images.ImageURL(img.Asset.Ref, bodyImageWidth, bodyImageQuality)
	if url == "" {
		return
	}

	alt := img.Alt
	if alt == "" {
		alt = "Article Image"
	}

	b.WriteString("<figure>")
	fmt.Fprintf(b, `<img src=%q alt=%q>`, url, alt)
	if img.Caption != "" {
		fmt.Fprintf(b, "<figcaption>%s</figcaption>", html.EscapeString(img.Caption))
	}
	b.WriteString("</figure>")
}

func (r *HTMLRenderer) renderCode(b *strings.Builder, raw json.RawMessage) {
	var code codeNode
	if err := json.Unmarshal(raw, &code); err != nil {
		return
	}
	// An absent code string still renders an empty block.
	fmt.Fprintf(b, "<pre><code>%s</code></pre>", html.EscapeString(code.Code))
}

func (r *HTMLRenderer) renderLatex(b *strings.Builder, raw json.RawMessage) {
	var expr latexNode
	if err := json.Unmarshal(raw, &expr); err != nil {
		return
	}
	if expr.Body == "" {
		return
	}
	// Emitted in MathJax display-math delimiters so the front end typesets it.
	fmt.Fprintf(b, `<div class="math">\[%s\]</div>`, html.EscapeString(expr.Body))
}
