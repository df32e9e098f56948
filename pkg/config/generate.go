package config

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/registry"
)

// starter mirrors the tool-level sections of a project file.
type starter struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// GenerateConfigContent renders a starter .copper.toml: the tool defaults as
// live values followed by every registered cop as a commented-out section in
// registry order, ready to be switched off or marked unsafe.
func GenerateConfigContent(reg *registry.Registry) (string, error) {
	head, err := toml.Marshal(starter{
		Output: Output{Color: "auto", Format: "table"},
		Log:    Log{Level: "warn"},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Write(head)
	b.WriteString("\n")

	for _, group := range reg.Grouped() {
		c := group.Cops[0]
		fmt.Fprintf(&b, "# [\"%s\"]\n", group.Name)
		fmt.Fprintf(&b, "# enabled = %s\n", tomlStatus(c))
		if !c.Safe {
			b.WriteString("# safe = false\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func tomlStatus(c cop.Cop) string {
	switch c.Enabled {
	case cop.StatusDisabled:
		return "false"
	case cop.StatusPending:
		return `"pending"`
	default:
		return "true"
	}
}
