package xmlconv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// ParseString parses an XML document into a Node tree rooted at the document
// element. Namespace prefixes are stripped from tag and attribute names and
// namespace declaration attributes are dropped; the converter never sees
// namespace noise. Character data is concatenated per element and trimmed,
// so whitespace-only content counts as no text. CDATA sections pass through
// as raw text and may produce malformed content — a known limitation.
func ParseString(xml string) (*Node, error) {
	if strings.TrimSpace(xml) == "" {
		return nil, NewInputError("input is empty", ErrEmptyInput)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, NewParsingError("failed to parse XML document", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, NewParsingError("document has no root element", ErrMalformedXML)
	}
	return buildNode(root), nil
}

// ParseReader parses an XML document from a reader. See ParseString.
func ParseReader(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewInputError("failed to read input", err)
	}
	return ParseString(string(data))
}

// ParseFile parses an XML document from a file path. See ParseString.
func ParseFile(filePath string) (*Node, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, NewInputError("file path is empty", ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				ErrFileNotFound,
			)
		}
		return nil, NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			ErrFileEmpty,
		)
	}

	return ParseReader(file)
}

// buildNode converts an etree element into the read-only Node model,
// preserving document order of attributes and children.
func buildNode(el *etree.Element) *Node {
	n := &Node{Tag: el.Tag}

	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		n.Attrs = append(n.Attrs, Attr{Name: a.Key, Value: a.Value})
	}

	var text strings.Builder
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.Element:
			n.Children = append(n.Children, buildNode(t))
		case *etree.CharData:
			text.WriteString(t.Data)
		}
	}
	n.Text = strings.TrimSpace(text.String())

	return n
}
