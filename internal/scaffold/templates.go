package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/jhughes-dev/mcmod/internal/models"
)

//go:embed templates
var templateFS embed.FS

// Data is the variable set every template is rendered against, derived
// wholesale from a project descriptor.
type Data struct {
	ModID       string
	ModName     string
	Package     string
	PackagePath string
	ClassName   string
	Author      string
	Description string
	Language    string

	MinecraftVersion    string
	FabricLoaderVersion string
	FabricAPIVersion    string
	NeoForgeVersion     string
	NeoForgeMajor       string

	// EnabledPlatforms is the comma-joined list of enabled loaders
	EnabledPlatforms string

	Year int
}

// DataFromDescriptor derives the template variable set from a descriptor
func DataFromDescriptor(d *models.Descriptor) Data {
	return Data{
		ModID:       d.ModInfo.ModID,
		ModName:     d.ModInfo.ModName,
		Package:     d.ModInfo.Package,
		PackagePath: models.PackageToPath(d.ModInfo.Package),
		ClassName:   models.DeriveClassName(d.ModInfo.ModID),
		Author:      d.ModInfo.Author,
		Description: d.ModInfo.Description,
		Language:    d.ModInfo.Language,

		MinecraftVersion:    d.Versions.Minecraft,
		FabricLoaderVersion: d.Versions.FabricLoader,
		FabricAPIVersion:    d.Versions.FabricAPI,
		NeoForgeVersion:     d.Versions.NeoForge,
		NeoForgeMajor:       models.NeoForgeMajor(d.Versions.NeoForge),

		EnabledPlatforms: strings.Join(d.EnabledPlatforms(), ","),

		Year: time.Now().Year(),
	}
}

// render parses and executes an embedded template by its path below
// templates/ (e.g. "fabric/fabric.mod.json.tmpl").
func render(name string, data Data) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("missing template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
