// Package web embeds the page templates and the inline stylesheet and script
// of the catalog page.
package web

import "embed"

// FS holds templates/layouts, templates/pages, static/css and static/js.
//
//go:embed templates/layouts/*.html templates/pages/*.html static/css/*.css static/js/*.js
var FS embed.FS
