// Package export renders a registry snapshot in machine-readable formats
// for editor and CI integrations.
package export

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/registry"
)

// WriteXML emits the registry as an XML document: departments in
// first-occurrence order, each cop with its qualified name and default
// posture.
func WriteXML(w io.Writer, reg *registry.Registry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("registry")
	root.CreateAttr("cops", strconv.Itoa(reg.Len()))

	for _, department := range reg.Departments() {
		deptEl := root.CreateElement("department")
		deptEl.CreateAttr("name", department)

		for _, c := range reg.WithDepartment(department).Cops() {
			copEl := deptEl.CreateElement("cop")
			copEl.CreateAttr("name", c.QualifiedName())
			copEl.CreateAttr("enabled", enabledAttr(c))
			copEl.CreateAttr("safe", boolAttr(c.Safe))
			if c.Description != "" {
				copEl.CreateElement("description").SetText(c.Description)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func enabledAttr(c cop.Cop) string {
	switch c.Enabled {
	case cop.StatusDisabled:
		return "false"
	case cop.StatusPending:
		return "pending"
	default:
		return "true"
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
