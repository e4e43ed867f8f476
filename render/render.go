package render

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ZacxDev/splugh/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer turns a validated config into the static output bundle. It is
// constructed locally and passed explicitly; there is no shared engine
// state.
type Renderer struct {
	MinifyJS bool
}

// File is one rendered output, in the order it will be written.
type File struct {
	Name string
	Data []byte
}

type outputFile struct {
	name   string
	render func(*config.Config) (string, error)
}

var outputFiles = []outputFile{
	{name: "index.html", render: renderHTML},
	{name: "index.js", render: renderJS},
}

// Render produces the full file set for cfg. Output is deterministic:
// the same config always yields byte-identical files.
func (r *Renderer) Render(cfg *config.Config) ([]File, error) {
	files := make([]File, 0, len(outputFiles)+1)

	for _, out := range outputFiles {
		content, err := out.render(cfg)
		if err != nil {
			return nil, err
		}

		if out.name == "index.js" && r.MinifyJS {
			content, err = minifyJS(content)
			if err != nil {
				return nil, err
			}
		}

		files = append(files, File{Name: out.name, Data: []byte(content)})
	}

	if cfg.Origin != "" {
		sitemap, err := sitemapContent(cfg)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: "sitemap.xml", Data: []byte(sitemap)})
	}

	return files, nil
}

// Write renders cfg into outDir, which must already exist.
func (r *Renderer) Write(cfg *config.Config, outDir string) error {
	files, err := r.Render(cfg)
	if err != nil {
		return err
	}

	for _, file := range files {
		path := filepath.Join(outDir, file.Name)
		if err := os.WriteFile(path, file.Data, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
	}

	return nil
}

func renderHTML(cfg *config.Config) (string, error) {
	ctx := plush.NewContext()
	ctx.Set("title", cfg.Title)
	ctx.Set("pages", cfg.Pages)
	ctx.Set("hasDescription", cfg.Description != "")
	ctx.Set("description", descriptionHTML(cfg.Description))

	tmpl, err := plush.Parse(indexHTMLTemplate)
	if err != nil {
		return "", errors.Wrap(err, "parsing index.html template")
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "executing index.html template")
	}

	return out, nil
}

func renderJS(cfg *config.Config) (string, error) {
	routes := make(map[string]string, len(cfg.Pages))
	for _, page := range cfg.Pages {
		routes[page.Shortcut] = page.Href
	}

	// Map keys are marshaled in sorted order, so the dispatch table is
	// stable across runs.
	routesJSON, err := json.Marshal(routes)
	if err != nil {
		return "", errors.Wrap(err, "encoding shortcut routes")
	}

	ctx := plush.NewContext()
	ctx.Set("routes", string(routesJSON))

	tmpl, err := plush.Parse(indexJSTemplate)
	if err != nil {
		return "", errors.Wrap(err, "parsing index.js template")
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "executing index.js template")
	}

	return out, nil
}

// descriptionHTML renders the optional markdown description. Plain
// strings are escaped by the template engine, so the rendered HTML is
// passed through as-is.
func descriptionHTML(md string) template.HTML {
	if md == "" {
		return ""
	}

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	return template.HTML(markdown.ToHTML([]byte(md), p, nil))
}
