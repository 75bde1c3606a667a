package field

// Label is an in-memory StatusLabel.
type Label struct {
	value   string
	visible bool
}

// NewLabel creates an empty, visible label.
func NewLabel() *Label {
	return &Label{visible: true}
}

func (l *Label) SetValue(value string) {
	l.value = value
}

func (l *Label) Value() string {
	return l.value
}

func (l *Label) SetVisible(visible bool) {
	l.visible = visible
}

func (l *Label) Visible() bool {
	return l.visible
}
