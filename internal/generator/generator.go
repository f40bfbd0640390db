// Package generator renders a validated endpoint registry into the generated
// TypeScript client module.
package generator

import (
	"bytes"
	"text/template"

	"github.com/toyz/ipcgen/internal/models"
	"github.com/toyz/ipcgen/internal/registry"
	"github.com/toyz/ipcgen/internal/utils"
)

// groupView is the template model for one exported group object
type groupView struct {
	Name    string
	Methods []methodView
}

// methodView is the template model for one forwarding function
type methodView struct {
	Name       string
	ParamDefs  string
	ParamNames string
	Route      string
}

// CodeGenerator renders an endpoint registry into a generated module
type CodeGenerator interface {
	GenerateModule(reg *registry.EndpointRegistry, outputPath string) (*models.GeneratedModule, error)
}

// Generator is the template-based CodeGenerator implementation
type Generator struct {
	template *template.Template
}

// NewGenerator creates a new code generator
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("client").Parse(clientTemplate)),
	}
}

// GenerateModule renders the whole client module in memory. Groups and
// methods are emitted in the registry's sorted order, so the same registry
// content always produces byte-identical output regardless of the order
// files were visited in.
func (g *Generator) GenerateModule(reg *registry.EndpointRegistry, outputPath string) (*models.GeneratedModule, error) {
	var groups []groupView

	for _, groupName := range reg.Groups() {
		view := groupView{Name: groupName}
		for _, methodName := range reg.Methods(groupName) {
			endpoint, _ := reg.Get(groupName, methodName)
			view.Methods = append(view.Methods, methodView{
				Name:       methodName,
				ParamDefs:  endpoint.ParamDefs,
				ParamNames: endpoint.ParamNames,
				Route:      endpoint.Route,
			})
		}
		groups = append(groups, view)
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, struct{ Groups []groupView }{Groups: groups}); err != nil {
		return nil, utils.WrapGenerateError("client module", err)
	}

	return &models.GeneratedModule{
		FilePath: outputPath,
		Content:  buf.String(),
	}, nil
}
