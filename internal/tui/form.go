// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const formInputWidth = 40

// field describes one labelled text input of a textForm.
type field struct {
	label       string
	placeholder string
	limit       int
	secret      bool
	value       string
}

// textForm is a column of labelled inputs. Exactly one input has focus.
type textForm struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	labelWidth int
}

func newTextForm(fields ...field) textForm {
	f := textForm{
		labels: make([]string, 0, len(fields)),
		inputs: make([]textinput.Model, 0, len(fields)),
	}

	for _, fl := range fields {
		in := textinput.New()
		in.Placeholder = fl.placeholder
		in.Width = formInputWidth
		if fl.limit > 0 {
			in.CharLimit = fl.limit
		}
		if fl.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(fl.value)

		f.labels = append(f.labels, fl.label)
		f.inputs = append(f.inputs, in)
		f.labelWidth = max(f.labelWidth, len(fl.label))
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}

	return f
}

func (f *textForm) count() int {
	return len(f.inputs)
}

func (f *textForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *textForm) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *textForm) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *textForm) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = f.inputs[i].Value()
	}
	return out
}

// move shifts focus by delta, wrapping around.
func (f *textForm) move(delta int) {
	if len(f.inputs) < 2 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *textForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// update hands msg to the focused input.
func (f *textForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *textForm) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", f.labelWidth, f.labels[i], in.View())
	}
	return b.String()
}

// formFooter renders the submit line and the last error under a form.
func formFooter(submitting bool, busy, idle, errMsg string) string {
	var b strings.Builder
	switch {
	case submitting:
		b.WriteString("\n[" + busy + "]\n")
	case idle != "":
		b.WriteString("\n[" + idle + "]\n")
	}
	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+errMsg) + "\n")
	}
	return b.String()
}
