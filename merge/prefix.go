package merge

import (
	"github.com/beevik/etree"
)

// Per-section attribute sets subject to namespace prefixing.
var (
	defaultPrefixAttrs   = []string{"class", "material", "hfield", "mesh", "target"}
	worldbodyPrefixAttrs = []string{"name", "childclass", "class", "material", "hfield", "mesh", "target"}
	actuatorPrefixAttrs  = []string{"name", "class", "joint", "jointinparent", "site", "tendon", "cranksite", "slidersite"}
	sensorPrefixAttrs    = []string{"name", "site", "joint", "actuator", "tendon", "objname", "body"}
	pairPrefixAttrs      = []string{"name", "class", "geom1", "geom2"}
	excludePrefixAttrs   = []string{"name", "body1", "body2"}
)

// addPrefix rewrites attr on el to "{entity}_{value}" when present.
func addPrefix(entity string, el *etree.Element, attr string) {
	if existing := el.SelectAttr(attr); existing != nil {
		existing.Value = entity + "_" + existing.Value
	}
}

// addPrefixAll applies addPrefix on a single node for every name in attrs.
func addPrefixAll(entity string, el *etree.Element, attrs []string) {
	for _, attr := range attrs {
		addPrefix(entity, el, attr)
	}
}

// addPrefixRecursive prefixes the attribute set on el and, depth first, on
// every descendant. Each node is visited exactly once so an identifier never
// picks up a double prefix.
func addPrefixRecursive(entity string, el *etree.Element, attrs []string) {
	addPrefixAll(entity, el, attrs)
	for _, child := range el.ChildElements() {
		addPrefixRecursive(entity, child, attrs)
	}
}
