package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taqyim/internal/app"
	"taqyim/internal/hr"
)

// form is a modal sequence of text inputs with a submit action. The two
// create forms (new employee, new evaluation) both use it; field-level
// validation stays at presence checks plus enum membership.
type form struct {
	title    string
	labels   []string
	fields   []textinput.Model
	optional map[int]bool
	focus    int
	err      string

	onSubmit func(tracker *app.Tracker, values []string) (string, error)
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	return ti
}

// newEmployeeForm builds the add-employee form.
func newEmployeeForm() *form {
	return &form{
		title:  "New employee",
		labels: []string{"Name", "Position", "Department", "Hiring date"},
		fields: []textinput.Model{
			newField("full name"),
			newField("job title"),
			newField("IT, HR, Finance, Sales or Operations"),
			newField("YYYY-MM-DD"),
		},
		onSubmit: func(tracker *app.Tracker, values []string) (string, error) {
			dept, ok := hr.ParseDepartment(strings.TrimSpace(values[2]))
			if !ok {
				return "", fmt.Errorf("unknown department %q", values[2])
			}
			added := tracker.AddEmployee(hr.Employee{
				Name:       strings.TrimSpace(values[0]),
				Position:   strings.TrimSpace(values[1]),
				Department: dept,
				HiringDate: strings.TrimSpace(values[3]),
			})
			return "Added employee " + added.Name, nil
		},
	}
}

// newEvaluationForm builds the add-evaluation form for the selected
// employee. The evaluation type is fixed by which key opened the form, so the
// form itself never asks for it.
func newEvaluationForm(emp hr.Employee, evType hr.EvaluationType) *form {
	date := newField("YYYY-MM-DD")
	date.SetValue(time.Now().Format("2006-01-02"))

	return &form{
		title:    string(evType) + " evaluation - " + emp.Name,
		labels:   []string{"Date", "Score (1-5)", "Notes"},
		optional: map[int]bool{2: true},
		fields: []textinput.Model{
			date,
			newField("1-5"),
			newField("optional notes"),
		},
		onSubmit: func(tracker *app.Tracker, values []string) (string, error) {
			score, err := strconv.Atoi(strings.TrimSpace(values[1]))
			if err != nil {
				return "", fmt.Errorf("score must be a number from 1 to 5")
			}
			tracker.AddEvaluation(hr.Evaluation{
				EmployeeID: emp.ID,
				Date:       strings.TrimSpace(values[0]),
				Type:       evType,
				Score:      score,
				Notes:      strings.TrimSpace(values[2]),
			})
			return "Added " + strings.ToLower(string(evType)) + " evaluation for " + emp.Name, nil
		},
	}
}

func (f *form) focusFirst() tea.Cmd {
	f.focus = 0
	for i := range f.fields {
		f.fields[i].Blur()
	}
	f.fields[0].Focus()
	return textinput.Blink
}

func (f *form) next() tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].Focus()
	return textinput.Blink
}

func (f *form) prev() tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].Focus()
	return textinput.Blink
}

func (f *form) onLastField() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return cmd
}

// submit runs the presence checks and then the form's action.
func (f *form) submit(tracker *app.Tracker) (string, error) {
	values := make([]string, len(f.fields))
	for i, field := range f.fields {
		values[i] = field.Value()
		if !f.optional[i] && strings.TrimSpace(values[i]) == "" {
			return "", fmt.Errorf("%s is required", strings.ToLower(f.labels[i]))
		}
	}
	return f.onSubmit(tracker, values)
}

func (f *form) view(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(f.title))
	sb.WriteString("\n")
	for i, field := range f.fields {
		label := f.labels[i]
		if i == f.focus {
			sb.WriteString(styles.Bold.Render("> " + label))
		} else {
			sb.WriteString(styles.Muted.Render("  " + label))
		}
		sb.WriteString("\n  ")
		sb.WriteString(field.View())
		sb.WriteString("\n")
	}
	if f.err != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.Error.Render(f.err))
		sb.WriteString("\n")
	}
	return sb.String()
}
