// Package render defines the seam between option building and markup.
//
// The default implementation lives in pkg/render/template and renders
// embedded pongo2 templates; hosts can substitute any Renderer.
package render
