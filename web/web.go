// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web holds the embedded single-page UI: the page template and
// the party colour table it renders with. All election data is fetched
// from the JSON API by the page's inline script.
package web

import (
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/ewanross/seatswap/models"
)

//go:embed page.html
var pageHTML string

// Page is the parsed single-page UI template. It is executed with PageData.
var Page = template.Must(template.New("page").Parse(pageHTML))

// PageData is the server-rendered part of the page: the election list for
// the year selector and the defaults for the option controls.
type PageData struct {
	Elections       []models.ElectionInfo
	DefaultElection string
	MaxCoalition    int
	Colours         template.JS
}

// ColoursJSON renders the party colour table as a JS object literal for
// the page script.
func ColoursJSON() template.JS {
	data, err := json.Marshal(PartyColours)
	if err != nil {
		// PartyColours is a static string map; this cannot fail
		return template.JS("{}")
	}
	return template.JS(data)
}
