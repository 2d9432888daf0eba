package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/util"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTemplateAdd
	ModalTemplateEdit
	ModalTemplateDelete
	ModalActivate
	ModalTimerEdit
	ModalTimerDelete
	ModalFilter
)

type ModalState interface {
	Type() ModalType
}

// inputModal is implemented by modals that own text inputs.
type inputModal interface {
	ModalState
	Inputs() []*textinput.Model
	FocusIndex() int
	SetFocus(i int)
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = config.TargetNameWidth
	return ti
}

// TemplateFormState backs both the add and the edit template dialogs.
type TemplateFormState struct {
	TemplateID string // empty when adding
	Name       textinput.Model
	Clock      textinput.Model
	focus      int
}

func newTemplateForm(tpl *models.Template) *TemplateFormState {
	s := &TemplateFormState{
		Name:  newInput("Template name", config.MaxNameLength),
		Clock: newInput("MM:SS", config.ClockInputLength),
	}
	if tpl != nil {
		s.TemplateID = tpl.ID
		s.Name.SetValue(tpl.Name)
		s.Clock.SetValue(util.FormatClock(tpl.Duration))
	}
	s.SetFocus(0)
	return s
}

func (s *TemplateFormState) Type() ModalType {
	if s.TemplateID == "" {
		return ModalTemplateAdd
	}
	return ModalTemplateEdit
}

func (s *TemplateFormState) Inputs() []*textinput.Model {
	return []*textinput.Model{&s.Name, &s.Clock}
}

func (s *TemplateFormState) FocusIndex() int { return s.focus }

func (s *TemplateFormState) SetFocus(i int) {
	s.focus = i
	for j, in := range s.Inputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// CustomerFormState backs activation (new timer) and customer rename.
type CustomerFormState struct {
	TemplateID string // set when activating
	TimerID    string // set when renaming
	Name       textinput.Model
}

func newCustomerForm(templateID, timerID, current string) *CustomerFormState {
	s := &CustomerFormState{
		TemplateID: templateID,
		TimerID:    timerID,
		Name:       newInput("Customer name", config.MaxNameLength),
	}
	s.Name.SetValue(current)
	s.Name.Focus()
	return s
}

func (s *CustomerFormState) Type() ModalType {
	if s.TimerID == "" {
		return ModalActivate
	}
	return ModalTimerEdit
}

func (s *CustomerFormState) Inputs() []*textinput.Model { return []*textinput.Model{&s.Name} }
func (s *CustomerFormState) FocusIndex() int            { return 0 }
func (s *CustomerFormState) SetFocus(int)               {}

// ConfirmDeleteState asks before a destructive delete. Bound lists the
// timers a template delete would take with it.
type ConfirmDeleteState struct {
	TemplateID string
	TimerID    string
	Label      string
	Bound      []models.Timer
}

func (s *ConfirmDeleteState) Type() ModalType {
	if s.TimerID != "" {
		return ModalTimerDelete
	}
	return ModalTemplateDelete
}

type FilterState struct {
	Query textinput.Model
}

func newFilter(current string) *FilterState {
	s := &FilterState{Query: newInput("status:running tpl:name text", 80)}
	s.Query.SetValue(current)
	s.Query.Focus()
	return s
}

func (s *FilterState) Type() ModalType            { return ModalFilter }
func (s *FilterState) Inputs() []*textinput.Model { return []*textinput.Model{&s.Query} }
func (s *FilterState) FocusIndex() int            { return 0 }
func (s *FilterState) SetFocus(int)               {}
