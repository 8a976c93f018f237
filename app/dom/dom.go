// Package dom is a small namespace-aware read-only view over an XML document.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

const xmlnsURI = "http://www.w3.org/2000/xmlns/"

// Node is an element of a parsed document. The zero value is an absent node.
type Node struct {
	n *xmlquery.Node
}

// Attr is an attribute with its resolved namespace URI ("" when unqualified).
type Attr struct {
	NamespaceURI string
	LocalName    string
	Value        string
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return Node{}, fmt.Errorf("failed to parse XML: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return Node{n: c}, nil
		}
	}
	return Node{}, fmt.Errorf("failed to parse XML: document has no root element")
}

func (e Node) IsZero() bool {
	return e.n == nil
}

func (e Node) LocalName() string {
	if e.n == nil {
		return ""
	}
	return e.n.Data
}

func (e Node) NamespaceURI() string {
	if e.n == nil {
		return ""
	}
	return e.n.NamespaceURI
}

// Is reports whether the element has the given namespace URI and local name.
func (e Node) Is(namespaceURI, localName string) bool {
	return e.n != nil && e.n.NamespaceURI == namespaceURI && e.n.Data == localName
}

// Text returns the trimmed text content of the element and all its descendants.
func (e Node) Text() string {
	if e.n == nil {
		return ""
	}
	return strings.TrimSpace(e.n.InnerText())
}

// Attr returns the trimmed value of an unqualified attribute.
func (e Node) Attr(localName string) string {
	return e.AttrNS("", localName)
}

func (e Node) AttrNS(namespaceURI, localName string) string {
	if e.n == nil {
		return ""
	}
	for _, a := range e.n.Attr {
		if a.Name.Local == localName && attrNamespace(a) == namespaceURI {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// Attrs lists the attributes in document order, without namespace declarations.
func (e Node) Attrs() []Attr {
	if e.n == nil {
		return nil
	}
	var attrs []Attr
	for _, a := range e.n.Attr {
		ns := attrNamespace(a)
		if ns == "xmlns" || ns == xmlnsURI || (ns == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, Attr{NamespaceURI: ns, LocalName: a.Name.Local, Value: strings.TrimSpace(a.Value)})
	}
	return attrs
}

// Children returns the element children in document order.
func (e Node) Children() []Node {
	if e.n == nil {
		return nil
	}
	var children []Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			children = append(children, Node{n: c})
		}
	}
	return children
}

// Child returns the first element child with the given namespace URI and local name.
func (e Node) Child(namespaceURI, localName string) (Node, bool) {
	for _, c := range e.Children() {
		if c.Is(namespaceURI, localName) {
			return c, true
		}
	}
	return Node{}, false
}

// ChildText is the trimmed text of the first matching child, or "" when there is none.
func (e Node) ChildText(namespaceURI, localName string) string {
	c, ok := e.Child(namespaceURI, localName)
	if !ok {
		return ""
	}
	return c.Text()
}

func attrNamespace(a xmlquery.Attr) string {
	if a.NamespaceURI != "" {
		return a.NamespaceURI
	}
	return a.Name.Space
}
