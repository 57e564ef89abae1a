package rwui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// defaultFace is used when a label is created without an explicit face.
var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Label renders a single line of text centred inside a rectangle.
type Label struct {
	content  string
	face     text.Face
	colour   Color
	position Vec2
	size     Vec2
}

// NewLabel creates a label centred in the given rectangle. A nil face selects
// the built-in basic font.
func NewLabel(content string, face text.Face, colour Color, position, size Vec2) *Label {
	if face == nil {
		face = defaultFace
	}
	return &Label{
		content:  content,
		face:     face,
		colour:   colour,
		position: position,
		size:     size,
	}
}

// SetPosition moves the rectangle the label centres itself in.
func (l *Label) SetPosition(position Vec2) {
	l.position = position
}

// SetSize resizes the rectangle the label centres itself in.
func (l *Label) SetSize(size Vec2) {
	l.size = size
}

// SetContent replaces the label text.
func (l *Label) SetContent(content string) {
	l.content = content
}

// Content returns the label text.
func (l *Label) Content() string {
	return l.content
}

// Draw renders the label text centred in its rectangle. Empty labels draw
// nothing.
func (l *Label) Draw(screen *ebiten.Image) {
	if l.content == "" {
		return
	}
	w, h := text.Measure(l.content, l.face, l.face.Metrics().HLineGap)
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		l.position.X+(l.size.X-w)/2,
		l.position.Y+(l.size.Y-h)/2,
	)
	a := float32(clamp01(l.colour.A))
	op.ColorScale.Scale(float32(l.colour.R)*a, float32(l.colour.G)*a, float32(l.colour.B)*a, a)
	text.Draw(screen, l.content, l.face, op)
}
