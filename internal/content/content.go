// Package content turns the site copy into the data the index template
// renders.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/microx-portfolio/internal/config"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
)

// Markdown renders src to HTML. Raw HTML in src is dropped.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(dedent(src)), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// dedent strips leading whitespace from every line so indented Go string
// literals are not read as code blocks.
func dedent(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// ProjectCopy is a gallery entry as written.
type ProjectCopy struct {
	Title    string
	Category string
	Image    string
	Link     string
	Summary  string
}

// Project is a rendered gallery entry.
type Project struct {
	Title    string
	Category string
	Image    string
	Link     string
	Summary  template.HTML
}

// Stat is an animated counter.
type Stat struct {
	Label string
	Count int
}

// Skill is a progress bar.
type Skill struct {
	Name    string
	Percent int
}

// Service is a card in the about section.
type Service struct {
	Title string
	Body  string
}

// Copy is everything written for the page.
type Copy struct {
	Name     string
	About    string
	Services []Service
	Stats    []Stat
	Skills   []Skill
	Projects []ProjectCopy
}

// Page is the index template's data.
type Page struct {
	Name       string
	About      template.HTML
	Services   []Service
	Stats      []Stat
	Skills     []Skill
	Projects   []Project
	Categories []string

	// Config is the browser configuration as JSON, embedded verbatim.
	Config template.JS
}

// Build renders c and embeds fe.
func Build(c Copy, fe config.Frontend) (Page, error) {
	about, err := Markdown(c.About)
	if err != nil {
		return Page{}, err
	}

	cfg, err := json.Marshal(fe)
	if err != nil {
		return Page{}, fmt.Errorf("encode frontend config: %w", err)
	}

	p := Page{
		Name:     c.Name,
		About:    about,
		Services: c.Services,
		Stats:    c.Stats,
		Skills:   c.Skills,
		Config:   template.JS(cfg),
	}

	seen := make(map[string]bool)
	for _, pc := range c.Projects {
		summary, err := Markdown(pc.Summary)
		if err != nil {
			return Page{}, fmt.Errorf("project %q: %w", pc.Title, err)
		}
		p.Projects = append(p.Projects, Project{
			Title:    pc.Title,
			Category: pc.Category,
			Image:    pc.Image,
			Link:     pc.Link,
			Summary:  summary,
		})

		if !seen[pc.Category] {
			seen[pc.Category] = true
			p.Categories = append(p.Categories, pc.Category)
		}
	}

	return p, nil
}
