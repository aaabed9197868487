package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/gameshelf/internal/catalog"
)

const DefaultLoadTimeout = 10 * time.Second

type Loader interface {
	Load(ctx context.Context) (catalog.Catalog, error)
}

type LoadSuccessMsg struct {
	Catalog  catalog.Catalog
	Duration time.Duration
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

// LoadCatalogCmd fetches the catalog once.
func LoadCatalogCmd(loader Loader, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()

		c, err := loader.Load(ctx)
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start)}
		}
		return LoadSuccessMsg{Catalog: c, Duration: time.Since(start)}
	}
}

// OpenURLCmd opens url in the browser and falls back to copying it.
func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard", Opened: false}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
