package merge

import (
	"github.com/beevik/etree"
	"github.com/viant/scenemerge/model"
)

// childOrCreate returns the child of parent with the given tag, creating it
// on first reference.
func childOrCreate(parent *etree.Element, tag string) *etree.Element {
	if child := parent.SelectElement(tag); child != nil {
		return child
	}
	return parent.CreateElement(tag)
}

// mergeCompiler merges compiler attributes generically. meshdir and
// texturedir are consumed by asset path resolution and never reach the
// merged compiler node.
func (m *Merger) mergeCompiler(ctx *entityContext, in, out *etree.Element) {
	m.mergeAttrs(model.SectionCompiler, ctx.file, in, out, "meshdir", "texturedir")
}

// mergeSize accumulates the numeric size counters.
func (m *Merger) mergeSize(ctx *entityContext, in, out *etree.Element) {
	accumulateAttrs(in, out)
}

// mergeOption merges option attributes, recursing once into an optional
// flag child with the same policy.
func (m *Merger) mergeOption(ctx *entityContext, in, out *etree.Element) {
	m.mergeAttrs(model.SectionOption, ctx.file, in, out)
	if in == nil {
		return
	}
	if flag := in.SelectElement("flag"); flag != nil {
		m.mergeAttrs(model.SectionOption+"/flag", ctx.file, flag, childOrCreate(out, "flag"))
	}
}

// mergeDefault copies nested default blocks verbatim with recursive entity
// prefixing and merges style-default leaves (joint, geom, ...) generically
// into the matching output child.
func (m *Merger) mergeDefault(ctx *entityContext, in, out *etree.Element) {
	if in == nil {
		return
	}
	for _, child := range in.ChildElements() {
		if child.Tag == model.SectionDefault {
			copied := child.Copy()
			out.AddChild(copied)
			addPrefixRecursive(ctx.name, copied, defaultPrefixAttrs)
			continue
		}
		m.mergeAttrs(model.SectionDefault+"/"+child.Tag, ctx.file, child, childOrCreate(out, child.Tag))
	}
}

// mergeVisual merges each visual child generically. Visual settings are
// global, so nothing is renamed.
func (m *Merger) mergeVisual(ctx *entityContext, in, out *etree.Element) {
	if in == nil {
		return
	}
	for _, child := range in.ChildElements() {
		m.mergeAttrs(model.SectionVisual+"/"+child.Tag, ctx.file, child, childOrCreate(out, child.Tag))
	}
}

// mergeAsset deep-copies hfield/skin/material/texture/mesh children,
// prefixes their names and referenced identifiers, and rewrites relative
// file references to absolute paths anchored at the entity's asset dirs.
func (m *Merger) mergeAsset(ctx *entityContext, in, out *etree.Element) {
	if in == nil {
		return
	}
	for _, hfield := range in.SelectElements("hfield") {
		copied := hfield.Copy()
		out.AddChild(copied)
		addPrefix(ctx.name, copied, "name")
	}
	for _, skin := range in.SelectElements("skin") {
		copied := skin.Copy()
		out.AddChild(copied)
		addPrefix(ctx.name, copied, "name")
		resolveFile(copied, ctx.meshDir)
		for _, bone := range copied.SelectElements("bone") {
			addPrefix(ctx.name, bone, "body")
		}
	}
	for _, material := range in.SelectElements("material") {
		copied := material.Copy()
		out.AddChild(copied)
		addPrefix(ctx.name, copied, "name")
		addPrefix(ctx.name, copied, "texture")
	}
	copyAssets(ctx.name, in, out, "texture", ctx.textureDir)
	copyAssets(ctx.name, in, out, "mesh", ctx.meshDir)
}

// copyAssets deep-copies every child of in with the given tag, prefixing its
// name and resolving its file reference against dir.
func copyAssets(entity string, in, out *etree.Element, tag, dir string) {
	for _, el := range in.SelectElements(tag) {
		copied := el.Copy()
		out.AddChild(copied)
		addPrefix(entity, copied, "name")
		resolveFile(copied, dir)
	}
}

// mergeContact deep-copies pair and exclude children, prefixing their own
// names and the referenced geometry/body identifiers.
func (m *Merger) mergeContact(ctx *entityContext, in, out *etree.Element) {
	copyWithPrefix(ctx.name, in, out, "pair", pairPrefixAttrs)
	copyWithPrefix(ctx.name, in, out, "exclude", excludePrefixAttrs)
}

// mergeActuator deep-copies every actuator child and prefixes its
// identifier and reference attributes.
func (m *Merger) mergeActuator(ctx *entityContext, in, out *etree.Element) {
	copyChildrenWithPrefix(ctx.name, in, out, actuatorPrefixAttrs)
}

// mergeSensor deep-copies every sensor child and prefixes its identifier
// and reference attributes.
func (m *Merger) mergeSensor(ctx *entityContext, in, out *etree.Element) {
	copyChildrenWithPrefix(ctx.name, in, out, sensorPrefixAttrs)
}

// mergeWorldbody deep-copies every top-level body subtree and prefixes the
// worldbody attribute set through the entire subtree.
func (m *Merger) mergeWorldbody(ctx *entityContext, in, out *etree.Element) {
	if in == nil {
		return
	}
	for _, child := range in.ChildElements() {
		copied := child.Copy()
		out.AddChild(copied)
		addPrefixRecursive(ctx.name, copied, worldbodyPrefixAttrs)
	}
}

// copyWithPrefix deep-copies every child of in with the given tag into out
// and prefixes the attribute set on the copy (node only).
func copyWithPrefix(entity string, in, out *etree.Element, tag string, attrs []string) {
	if in == nil {
		return
	}
	for _, child := range in.SelectElements(tag) {
		copied := child.Copy()
		out.AddChild(copied)
		addPrefixAll(entity, copied, attrs)
	}
}

// copyChildrenWithPrefix deep-copies every child of in into out and prefixes
// the attribute set on each copy (node only).
func copyChildrenWithPrefix(entity string, in, out *etree.Element, attrs []string) {
	if in == nil {
		return
	}
	for _, child := range in.ChildElements() {
		copied := child.Copy()
		out.AddChild(copied)
		addPrefixAll(entity, copied, attrs)
	}
}
