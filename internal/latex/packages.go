package latex

import (
	"slices"
	"strings"
)

// Package is a LaTeX package with its options, in the order first required.
type Package struct {
	Name    string
	Options []string
}

// UsePackage returns \usepackage[options]{name}.
func (p Package) UsePackage() string {
	return UsePackage(p.Name, strings.Join(p.Options, ","))
}

// Packages accumulates the packages a conversion run needs. It is not safe
// for concurrent use; each run owns one.
type Packages struct {
	list []Package
}

// NewPackages returns an empty accumulator.
func NewPackages() *Packages {
	return &Packages{}
}

// Require records name, merging options with any recorded earlier.
func (p *Packages) Require(name string, options ...string) {
	for i := range p.list {
		if p.list[i].Name != name {
			continue
		}
		for _, opt := range options {
			if !slices.Contains(p.list[i].Options, opt) {
				p.list[i].Options = append(p.list[i].Options, opt)
			}
		}
		return
	}
	p.list = append(p.list, Package{Name: name, Options: slices.Clone(options)})
}

// Has reports whether name was required.
func (p *Packages) Has(name string) bool {
	for _, pkg := range p.list {
		if pkg.Name == name {
			return true
		}
	}
	return false
}

// Merge requires every package of other.
func (p *Packages) Merge(other *Packages) {
	if other == nil {
		return
	}
	for _, pkg := range other.list {
		p.Require(pkg.Name, pkg.Options...)
	}
}

// List returns a copy of the recorded packages.
func (p *Packages) List() []Package {
	out := make([]Package, len(p.list))
	for i, pkg := range p.list {
		out[i] = Package{Name: pkg.Name, Options: slices.Clone(pkg.Options)}
	}
	return out
}

// Names returns the package names in the order first required.
func (p *Packages) Names() []string {
	names := make([]string, len(p.list))
	for i, pkg := range p.list {
		names[i] = pkg.Name
	}
	return names
}

// Preamble renders one \usepackage line per package.
func (p *Packages) Preamble() string {
	var b strings.Builder
	for _, pkg := range p.list {
		b.WriteString(pkg.UsePackage())
		b.WriteByte('\n')
	}
	return b.String()
}
