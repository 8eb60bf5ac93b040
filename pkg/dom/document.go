package dom

// Document marks the root of a live tree. Nodes reachable from its body are
// attached; everything else is detached scratch space.
type Document struct {
	body *Element
}

// NewDocument creates a document with an empty <body>.
func NewDocument() *Document {
	d := &Document{}
	d.body = NewElement("body")
	d.body.doc = d
	return d
}

// Body returns the document body element.
func (d *Document) Body() *Element {
	return d.body
}
