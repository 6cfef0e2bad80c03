package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mindloom/mindloom/backend-go/internal/document"
)

const maxDocumentSize = 20 << 20 // 20MB

// Handler exports a mind map document as a downloadable file. The client
// posts the document JSON and picks a format via the "format" query param.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}

	var doc document.MindMap
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid document: "+err.Error(), http.StatusBadRequest)
		return
	}
	if doc.Root == nil {
		http.Error(w, "document has no root topic", http.StatusBadRequest)
		return
	}

	name := sanitizeFilename(doc.Project.Name)
	if name == "" {
		name = "mindmap"
	}

	var body []byte
	var contentType, ext string
	var err error

	switch format {
	case "markdown":
		body = []byte(ToMarkdown(&doc))
		contentType = "text/markdown; charset=utf-8"
		ext = "md"
	case "opml":
		body, err = ToOPML(&doc)
		contentType = "text/x-opml; charset=utf-8"
		ext = "opml"
	case "json":
		body, err = json.MarshalIndent(&doc, "", "  ")
		contentType = "application/json"
		ext = "json"
	default:
		http.Error(w, "invalid format: must be markdown, opml, or json", http.StatusBadRequest)
		return
	}

	if err != nil {
		slog.Error("export failed", "format", format, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("export complete", "format", format, "topics", document.CountNodes(doc.Root), "size", len(body))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, ext))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}

// ToMarkdown renders the map as a nested outline. The root becomes the
// top-level heading, its children second-level headings, and deeper topics
// indented list items. Floating topics get their own section.
func ToMarkdown(doc *document.MindMap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", doc.Root.Text)
	if doc.Root.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Root.Note)
	}

	for _, child := range doc.Root.Children {
		fmt.Fprintf(&b, "\n## %s\n", child.Text)
		if child.Note != "" {
			fmt.Fprintf(&b, "\n%s\n", child.Note)
		}
		if len(child.Children) > 0 {
			b.WriteString("\n")
			for _, grandchild := range child.Children {
				writeMarkdownList(&b, grandchild, 0)
			}
		}
	}

	if len(doc.FloatingTopics) > 0 {
		b.WriteString("\n## Floating topics\n\n")
		for _, topic := range doc.FloatingTopics {
			writeMarkdownList(&b, topic, 0)
		}
	}

	return b.String()
}

func writeMarkdownList(b *strings.Builder, node *document.Node, depth int) {
	fmt.Fprintf(b, "%s- %s\n", strings.Repeat("  ", depth), node.Text)
	for _, child := range node.Children {
		writeMarkdownList(b, child, depth+1)
	}
}

type opmlDoc struct {
	XMLName xml.Name    `xml:"opml"`
	Version string      `xml:"version,attr"`
	Title   string      `xml:"head>title"`
	Body    []*opmlNode `xml:"body>outline"`
}

type opmlNode struct {
	Text     string      `xml:"text,attr"`
	Note     string      `xml:"_note,attr,omitempty"`
	Children []*opmlNode `xml:"outline,omitempty"`
}

// ToOPML renders the map in OPML 2.0, the interchange format most outliner
// and mind-mapping tools accept. Floating topics become extra top-level
// outlines after the main tree.
func ToOPML(doc *document.MindMap) ([]byte, error) {
	out := &opmlDoc{
		Version: "2.0",
		Title:   doc.Project.Name,
		Body:    []*opmlNode{opmlFromNode(doc.Root)},
	}
	for _, topic := range doc.FloatingTopics {
		out.Body = append(out.Body, opmlFromNode(topic))
	}

	body, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal opml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func opmlFromNode(node *document.Node) *opmlNode {
	out := &opmlNode{Text: node.Text, Note: node.Note}
	for _, child := range node.Children {
		out.Children = append(out.Children, opmlFromNode(child))
	}
	return out
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		if r == ' ' {
			return '-'
		}
		return -1
	}, name)
}
