package models

import (
	"fmt"
	"strings"
)

// InvalidModIDError reports a mod id that does not match ^[a-z][a-z0-9_]*$
type InvalidModIDError struct {
	ID string
}

func (e *InvalidModIDError) Error() string {
	return fmt.Sprintf("invalid mod ID %q: must match ^[a-z][a-z0-9_]*$", e.ID)
}

// InvalidPackageError reports a package name that is not dot-separated
// lowercase segments.
type InvalidPackageError struct {
	Package string
}

func (e *InvalidPackageError) Error() string {
	return fmt.Sprintf("invalid package %q: must match ^[a-z][a-z0-9_]*(\\.[a-z][a-z0-9_]*)*$", e.Package)
}

// ValidateModID checks a mod id against ^[a-z][a-z0-9_]*$
func ValidateModID(id string) error {
	if !validSegment(id) {
		return &InvalidModIDError{ID: id}
	}
	return nil
}

// ValidatePackage checks a Java package name: lowercase segments
// separated by dots, each segment a valid identifier.
func ValidatePackage(pkg string) error {
	if pkg == "" {
		return &InvalidPackageError{Package: pkg}
	}
	for _, segment := range strings.Split(pkg, ".") {
		if !validSegment(segment) {
			return &InvalidPackageError{Package: pkg}
		}
	}
	return nil
}

func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// ToPascalCase converts a snake_case string to PascalCase
// (e.g. "my_cool_mod" -> "MyCoolMod").
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// PackageToPath converts a package name to a source directory path
// (e.g. "com.example.mymod" -> "com/example/mymod").
func PackageToPath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// DeriveClassName derives the shared entrypoint class name from a mod id
// (e.g. "my_mod" -> "MyModMod").
func DeriveClassName(modID string) string {
	return ToPascalCase(modID) + "Mod"
}

// DefaultModName derives a display name from a mod id
// (e.g. "my_mod" -> "My Mod").
func DefaultModName(modID string) string {
	var parts []string
	for _, part := range strings.Split(modID, "_") {
		if part == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(parts, " ")
}

// NeoForgeMajor extracts the major.minor prefix of a NeoForge version
// (e.g. "21.4.156" -> "21.4").
func NeoForgeMajor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return version
}
