// Package templates provides project scaffolding templates.
//
// A template writes a markup.json and starter documents that render
// with the default decoder.
//
// # Available Templates
//
//   - minimal: A config file and one document
//   - site: Several documents with metrics and local publishing
//
// # Usage
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, templates.Config{ProjectName: "docs"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.ProjectName}}     - Name of the project
//	{{.Description}}     - Project description
//	{{.Port}}            - Render server port
package templates
