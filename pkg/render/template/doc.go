// Package template renders option entries through a template engine.
//
// OptionsRenderer executes templates/options.tpl and templates/select.tpl,
// embedded in this package and exposed through TemplatesFS so hosts can copy
// or override them (see gotemplate.WithBaseDir).
package template
