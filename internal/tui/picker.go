package tui

import (
	"path/filepath"
	"strings"
)

// picker cycles through a fixed list of asset names.
type picker struct {
	label   string
	options []string
	idx     int
}

func newPicker(label string, options []string) picker {
	return picker{label: label, options: options}
}

func (p picker) selected() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.idx]
}

func (p *picker) next() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx + 1) % len(p.options)
}

func (p *picker) prev() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx - 1 + len(p.options)) % len(p.options)
}

func (p picker) view(focused bool) string {
	var b strings.Builder

	for i, option := range p.options {
		if i > 0 {
			b.WriteString("  ")
		}
		name := strings.TrimSuffix(filepath.Base(option), filepath.Ext(option))
		if i == p.idx {
			name = "[" + name + "]"
			if focused {
				name = focusedStyle.Render(name)
			}
		} else {
			name = " " + name + " "
		}
		b.WriteString(name)
	}

	return b.String()
}
