package models

// Language identifies the source language of the generated mod code.
const (
	LanguageJava   = "java"
	LanguageKotlin = "kotlin"
)

// Loader module names.
const (
	LoaderFabric   = "fabric"
	LoaderNeoForge = "neoforge"
)

// Descriptor is the persisted record of a project's identity, enabled
// loader modules, enabled add-ons, and pinned versions. It is stored as
// mcmod.toml in the project root and always written back wholesale.
type Descriptor struct {
	ModInfo  ModInfo  `toml:"mod_info"`
	Loaders  Loaders  `toml:"loaders"`
	Features Features `toml:"features"`
	Versions Versions `toml:"versions"`
}

// ModInfo holds the project's identity fields
type ModInfo struct {
	ModID       string `toml:"mod_id"`
	ModName     string `toml:"mod_name"`
	Package     string `toml:"package"`
	Author      string `toml:"author"`
	Description string `toml:"description"`
	Language    string `toml:"language"`
}

// Loaders holds one monotonic flag per optional loader module.
// Once a flag is true the engine never clears it.
type Loaders struct {
	Fabric   bool `toml:"fabric"`
	NeoForge bool `toml:"neoforge"`
}

// Features holds monotonic flags for orthogonal add-ons
type Features struct {
	CI bool `toml:"ci"`
}

// Versions pins the platform and loader artifact versions the project
// was generated against. Free-form strings, not semver.
type Versions struct {
	Minecraft    string `toml:"minecraft"`
	FabricLoader string `toml:"fabric_loader"`
	FabricAPI    string `toml:"fabric_api"`
	NeoForge     string `toml:"neoforge"`
}

// DefaultVersions returns the pinned fallback versions used when online
// discovery is skipped or fails.
func DefaultVersions() Versions {
	return Versions{
		Minecraft:    "1.21.4",
		FabricLoader: "0.16.9",
		FabricAPI:    "0.111.0+1.21.4",
		NeoForge:     "21.4.156",
	}
}

// EnabledPlatforms returns the names of enabled loader modules in their
// canonical order (e.g. ["fabric", "neoforge"]).
func (d *Descriptor) EnabledPlatforms() []string {
	var platforms []string
	if d.Loaders.Fabric {
		platforms = append(platforms, LoaderFabric)
	}
	if d.Loaders.NeoForge {
		platforms = append(platforms, LoaderNeoForge)
	}
	return platforms
}
