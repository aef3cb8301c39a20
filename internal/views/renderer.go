package views

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

// Binding ties a logical view to its template block and the DOM target
// the block replaces. The set is constructed once at startup and threaded
// through as a parameter; handlers never look targets up by bare ID.
type Binding struct {
	Template string
	Target   string
}

// Bindings maps every logical view of the dashboard to its render target.
type Bindings struct {
	Page          Binding
	Table         Binding
	Summary       Binding
	Chart         Binding
	Dropdown      Binding
	Notifications Binding
}

// DefaultBindings returns the binding set for the stock dashboard page.
func DefaultBindings() Bindings {
	return Bindings{
		Page:          Binding{Template: "dashboard_page", Target: "dashboard"},
		Table:         Binding{Template: "transactions_table", Target: "transactionsBody"},
		Summary:       Binding{Template: "summary_panel", Target: "summary"},
		Chart:         Binding{Template: "category_chart", Target: "categoryChart"},
		Dropdown:      Binding{Template: "category_options", Target: "category"},
		Notifications: Binding{Template: "notifications", Target: "notifications"},
	}
}

// Renderer executes embedded templates for echo. It implements
// echo.Renderer.
type Renderer struct {
	templates *template.Template
	bindings  Bindings
}

// NewRenderer parses the template set from the given filesystem.
func NewRenderer(templatesFS fs.FS, bindings Bindings) (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates, bindings: bindings}, nil
}

// Bindings returns the binding set the renderer was built with.
func (r *Renderer) Bindings() Bindings {
	return r.bindings
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// RenderView executes the template block of a binding directly.
func (r *Renderer) RenderView(w io.Writer, binding Binding, data interface{}) error {
	return r.templates.ExecuteTemplate(w, binding.Template, data)
}
