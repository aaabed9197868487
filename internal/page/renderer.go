package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
)

//go:embed templates/page.pug
var templatesFS embed.FS

const shellName = "page.pug"

// Renderer executes a compiled pug page shell.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compiles the page shell at shellPath, or the built-in shell when
// shellPath is empty. Includes in a custom shell resolve against its directory.
func NewRenderer(shellPath string) (*Renderer, error) {
	if shellPath == "" {
		shell, err := templatesFS.ReadFile("templates/" + shellName)
		if err != nil {
			return nil, fmt.Errorf("read built-in page shell: %w", err)
		}
		tmpl, err := pug.CompileString(string(shell), pug.Options{})
		if err != nil {
			return nil, fmt.Errorf("compile built-in page shell: %w", err)
		}
		return &Renderer{tmpl: tmpl}, nil
	}

	abs, err := filepath.Abs(shellPath)
	if err != nil {
		return nil, fmt.Errorf("resolve page shell %s: %w", shellPath, err)
	}
	tmpl, err := pug.CompileFile(filepath.Base(abs), pug.Options{Dir: compiler.FsDir(filepath.Dir(abs))})
	if err != nil {
		return nil, fmt.Errorf("compile page shell %s: %w", shellPath, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, d *Document) error {
	if err := r.tmpl.Execute(w, d.data()); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
