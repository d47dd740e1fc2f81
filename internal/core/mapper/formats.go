package mapper

import (
	"github.com/nightconcept/projmeta/internal/core/document"
	"github.com/nightconcept/projmeta/internal/core/metadata"
)

// PackageJSON maps an npm package.json. The single "author" string becomes a
// one-element Authors list.
func PackageJSON(root document.Node) metadata.Metadata {
	m := metadata.Metadata{
		Name:         text(root.Get("name")),
		Version:      text(root.Get("version")),
		Description:  optionalText(root.Get("description")),
		License:      optionalText(root.Get("license")),
		Keywords:     textList(root.Get("keywords")),
		Dependencies: simpleDependencies(root.Get("dependencies")),
		Scripts:      textMap(root.Get("scripts")),
	}
	if author, ok := root.Get("author").Text(); ok {
		m.Authors = []string{author}
	}
	return m
}

// CargoTOML maps a Cargo.toml. Package fields live under [package];
// [dependencies] is read as a detailed table. Cargo has no scripts.
func CargoTOML(root document.Node) metadata.Metadata {
	pkg := root.Get("package")
	return metadata.Metadata{
		Name:         text(pkg.Get("name")),
		Version:      text(pkg.Get("version")),
		Description:  optionalText(pkg.Get("description")),
		Authors:      textList(pkg.Get("authors")),
		License:      optionalText(pkg.Get("license")),
		Keywords:     textList(pkg.Get("keywords")),
		Dependencies: detailedDependencies(root.Get("dependencies")),
	}
}

// DenoJSON maps a deno.json. Dependencies come from the import map; deno.json
// has no authors field. Only "scripts" is read; "tasks" is not a scripts source.
func DenoJSON(root document.Node) metadata.Metadata {
	return metadata.Metadata{
		Name:         text(root.Get("name")),
		Version:      text(root.Get("version")),
		Description:  optionalText(root.Get("description")),
		License:      optionalText(root.Get("license")),
		Keywords:     textList(root.Get("keywords")),
		Dependencies: simpleDependencies(root.Get("imports")),
		Scripts:      textMap(root.Get("scripts")),
	}
}

// PyprojectTOML maps a pyproject.toml. Fields live under [project], including
// the dependency table. Scripts are not mapped.
func PyprojectTOML(root document.Node) metadata.Metadata {
	project := root.Get("project")
	return metadata.Metadata{
		Name:         text(project.Get("name")),
		Version:      text(project.Get("version")),
		Description:  optionalText(project.Get("description")),
		Authors:      textList(project.Get("authors")),
		License:      optionalText(project.Get("license")),
		Keywords:     textList(project.Get("keywords")),
		Dependencies: detailedDependencies(project.Get("dependencies")),
	}
}
