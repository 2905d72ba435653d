package site

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Alias maps a symbolic import prefix such as "$components" onto a source directory.
type Alias struct {
	Prefix string `json:"prefix"`
	Dir    string `json:"dir"`
}

var defaultAliases = [...]Alias{
	{Prefix: "$styles", Dir: "src/styles"},
	{Prefix: "$data", Dir: "src/data"},
	{Prefix: "$components", Dir: "src/components"},
	{Prefix: "$utils", Dir: "src/utils"},
	{Prefix: "$stores", Dir: "src/stores"},
	{Prefix: "$actions", Dir: "src/actions"},
	{Prefix: "$svg", Dir: "src/svg"},
}

// DefaultAliases returns the project's import aliases with directories relative to the project root.
func DefaultAliases() []Alias {
	return slices.Clone(defaultAliases[:])
}

// AliasTable is a resolved, read-only set of aliases with absolute directories.
type AliasTable struct {
	entries []Alias
}

// NewAliasTable resolves each alias directory against root, which is itself made absolute against the working
// directory. With no aliases given the defaults are used.
func NewAliasTable(root string, aliases ...Alias) (table AliasTable, fault error) {
	if len(aliases) == 0 {
		aliases = DefaultAliases()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return AliasTable{}, fmt.Errorf("could not resolve project root '%s': %w", root, err)
	}

	seen := make(map[string]struct{}, len(aliases))
	entries := make([]Alias, 0, len(aliases))

	for _, a := range aliases {
		if a.Prefix == "" || a.Dir == "" {
			return AliasTable{}, fmt.Errorf("%w: prefix %q, dir %q", ErrInvalidAlias, a.Prefix, a.Dir)
		}

		if _, dup := seen[a.Prefix]; dup {
			return AliasTable{}, fmt.Errorf("%w: prefix %q declared twice", ErrInvalidAlias, a.Prefix)
		}
		seen[a.Prefix] = struct{}{}

		dir := filepath.FromSlash(a.Dir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(absRoot, dir)
		}

		entries = append(entries, Alias{Prefix: a.Prefix, Dir: filepath.Clean(dir)})
	}

	return AliasTable{entries: entries}, nil
}

// Resolve rewrites an import specifier that starts with a known prefix, so "$components/Legend.svelte" becomes
// "<root>/src/components/Legend.svelte". A prefix only matches the whole specifier or a segment boundary: "$svgs/x"
// does not match "$svg". The first declared match wins. Unmatched specifiers are returned unchanged with false, as
// are specifiers whose ".." segments would resolve outside the alias directory.
func (t AliasTable) Resolve(specifier string) (resolved string, matched bool) {
	for _, a := range t.entries {
		if specifier == a.Prefix {
			return a.Dir, true
		}

		if rest, ok := strings.CutPrefix(specifier, a.Prefix+"/"); ok {
			joined := filepath.Join(a.Dir, filepath.FromSlash(rest))
			if rel, err := filepath.Rel(a.Dir, joined); err != nil || !filepath.IsLocal(rel) {
				return specifier, false
			}

			return joined, true
		}
	}

	return specifier, false
}

// Entries returns the resolved aliases in declared order.
func (t AliasTable) Entries() []Alias {
	return slices.Clone(t.entries)
}

// Map returns the aliases in the prefix to directory form bundlers take.
func (t AliasTable) Map() map[string]string {
	out := make(map[string]string, len(t.entries))
	for _, a := range t.entries {
		out[a.Prefix] = a.Dir
	}

	return out
}
