package gameui

import (
	"github.com/lixenwraith/cellui/control"
	"github.com/lixenwraith/cellui/widget"
)

// RuleGlyph fills the first content row of the character form
const RuleGlyph = '='

// CharacterForm is the character creation form: a rule across the top row and
// one labeled field per attribute below it
type CharacterForm struct {
	*control.Form
}

// NewCharacterForm lays out the form at (y, x); height is one rule row plus one row per field
func NewCharacterForm(t *widget.Tree, y, x, w int, fields []string) (*CharacterForm, error) {
	form, err := control.NewForm(t, y, x, len(fields)+1, w, fields)
	if err != nil {
		return nil, err
	}
	f := &CharacterForm{Form: form}
	_, cw := f.ContentSize()
	for col := range cw {
		f.Putc(0, col, RuleGlyph)
	}
	return f, nil
}

// Name returns the committed value of the first field, the character's name
func (f *CharacterForm) Name(out map[string]string) string {
	labels := f.Labels()
	if len(labels) == 0 {
		return ""
	}
	return out[labels[0]]
}
