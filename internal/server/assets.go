package server

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed assets/index.html.tpl assets/style.css assets/script.js
var assets embed.FS

// PageData is the template input of the index page.
type PageData struct {
	Title         string
	CSS           string
	JS            string
	PlacemarksURL string
	KMLURL        string
	CenterLat     float64
	CenterLon     float64
	Zoom          int
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	return m
}

// renderIndex minifies the embedded stylesheet and script, executes the
// page template and minifies the result.
func renderIndex(data PageData) ([]byte, error) {
	m := newMinifier()

	cssRaw, err := assets.ReadFile("assets/style.css")
	if err != nil {
		return nil, fmt.Errorf("read css: %w", err)
	}
	if data.CSS, err = m.String("text/css", string(cssRaw)); err != nil {
		return nil, fmt.Errorf("minify css: %w", err)
	}

	jsRaw, err := assets.ReadFile("assets/script.js")
	if err != nil {
		return nil, fmt.Errorf("read js: %w", err)
	}
	if data.JS, err = m.String("text/javascript", string(jsRaw)); err != nil {
		return nil, fmt.Errorf("minify js: %w", err)
	}

	htmlRaw, err := assets.ReadFile("assets/index.html.tpl")
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	tmpl, err := template.New("index").Parse(string(htmlRaw))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify html: %w", err)
	}

	return out, nil
}
