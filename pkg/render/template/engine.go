// Package template wraps a pongo2 template set behind the small surface
// helpers need: render a named template from a configured source, or render an
// inline template string.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Renderer is the seam helpers depend on, keeping pongo2 out of their API.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// Engine is a pongo2-backed Renderer. Engines built without a template source
// still render inline strings; RenderTemplate then fails with a load error.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

var _ Renderer = (*Engine)(nil)

// New constructs an Engine using the provided options.
func New(options ...Option) (*Engine, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("template: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		// pongo2 refuses a loaderless set; a working-directory loader keeps
		// inline rendering available while named lookups fail at load time.
		loaders = append(loaders, pongo2.MustNewLocalFileSystemLoader(""))
	}

	return &Engine{
		set:   pongo2.NewSet("formview", loaders...),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate executes a template loaded from the configured source.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	return execute(tmpl, name, data)
}

// RenderString parses and executes an inline template.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("template: parse inline template: %w", err)
	}
	return execute(tmpl, "inline", data)
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("template: load template %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("template: execute %q: %w", name, err)
	}
	return buf.String(), nil
}
