package entity

// DocumentID identifies the document a view displays. The layout core never
// inspects it beyond equality; ownership of document state stays with the
// caller.
type DocumentID string

// View is a leaf pane: one view onto a document. The layout solver writes
// Area; everything else belongs to the caller.
type View struct {
	ID   ViewID // assigned when the view enters a layout tree
	Doc  DocumentID
	Name string
	Area Rect
}

// NewView creates a view onto the given document.
func NewView(doc DocumentID, name string) *View {
	return &View{Doc: doc, Name: name}
}
