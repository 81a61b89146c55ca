package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

func validateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("chart document is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("chart document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path %s is a directory", abs)
	}

	return nil
}

// terminalWidth returns the column count of w when it is a terminal, else the default width.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return components.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return components.DefaultWidth
	}
	return width
}

func themeFlag(name string) (components.Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "dark":
		return components.ThemeByName(name), nil
	default:
		return components.Theme{}, fmt.Errorf("unknown theme %q: expected light or dark", name)
	}
}
