package merge

import (
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/viant/scenemerge/model"
)

// assetDir resolves the base directory for one asset kind (meshdir or
// texturedir) from the document's own compiler section. A declared absolute
// directory is used as-is, a relative one is anchored at the document's
// directory, and an undeclared one defaults to the document's directory.
func assetDir(doc *model.Document, attr string) string {
	base := doc.Dir()
	compiler := doc.Root.SelectElement(model.SectionCompiler)
	if compiler == nil {
		return base
	}
	dir := compiler.SelectAttrValue(attr, "")
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// resolveFile rewrites a relative file reference on el to the absolute path
// anchored at dir. Absolute references are left untouched.
func resolveFile(el *etree.Element, dir string) {
	attr := el.SelectAttr("file")
	if attr == nil {
		return
	}
	if filepath.IsAbs(attr.Value) {
		return
	}
	attr.Value = filepath.Join(dir, attr.Value)
}
