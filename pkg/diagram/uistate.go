package diagram

// Tool identifies the active editing tool. Tool selection originates from a
// closed UI surface, so unknown values are rejected silently rather than
// treated as faults.
type Tool string

// Supported tools.
const (
	ToolSelect Tool = "select"
	ToolMove   Tool = "move"
	ToolAdd    Tool = "add"
	ToolDelete Tool = "delete"
)

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	switch t {
	case ToolSelect, ToolMove, ToolAdd, ToolDelete:
		return true
	}
	return false
}

// SelectionKind distinguishes what kind of element is selected.
type SelectionKind int

const (
	// SelectionNone means nothing is selected.
	SelectionNone SelectionKind = iota
	// SelectionNode means a node is selected.
	SelectionNode
	// SelectionFlow means a flow is selected.
	SelectionFlow
	// SelectionLabel means a label is selected.
	SelectionLabel
)

// String returns the selection kind name.
func (k SelectionKind) String() string {
	switch k {
	case SelectionNode:
		return "node"
	case SelectionFlow:
		return "flow"
	case SelectionLabel:
		return "label"
	default:
		return "none"
	}
}

// Selection is the current selection state: one kind plus the selected
// element's ID. Selecting any element replaces the previous selection in the
// same operation; there is never more than one active selection.
type Selection struct {
	Kind SelectionKind
	ID   string
}

// UIState is transient interaction state. It is never snapshotted for
// undo/redo and never persisted.
type UIState struct {
	Selection  Selection
	Zoom       float64
	PanX       float64
	PanY       float64
	ActiveTool Tool
	IsDragging bool
}

// DefaultUIState returns the documented UI defaults.
func DefaultUIState() UIState {
	return UIState{
		Zoom:       1,
		ActiveTool: ToolSelect,
	}
}
