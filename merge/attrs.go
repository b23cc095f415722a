package merge

import (
	"strconv"

	"github.com/beevik/etree"
)

// sizeCounters are the numeric size attributes combined by integer addition.
var sizeCounters = []string{
	"njmax", "nconmax", "nstack", "nuserdata", "nkey",
	"nuser_body", "nuser_jnt", "nuser_geom", "nuser_site", "nuser_cam",
	"nuser_tendon", "nuser_actuator", "nuser_sensor",
}

// mergeAttrs copies every attribute of in that out does not carry yet,
// skipping the names in exclude. An attribute already present keeps its
// value; a differing incoming value is reported and dropped (first loaded
// value prevails). No attribute is ever removed from out.
func (m *Merger) mergeAttrs(section, fileIn string, in, out *etree.Element, exclude ...string) {
	if in == nil {
		return
	}
	for _, attr := range in.Attr {
		if contains(exclude, attr.Key) {
			continue
		}
		existing := out.SelectAttr(attr.Key)
		if existing == nil {
			out.CreateAttr(attr.Key, attr.Value)
			continue
		}
		if existing.Value != attr.Value {
			m.reporter.Conflict(Conflict{
				Section:   section,
				Attribute: attr.Key,
				File:      fileIn,
				Lost:      attr.Value,
				Kept:      existing.Value,
			})
		}
	}
}

// accumulateAttrs combines the fixed size counters by integer addition;
// a counter absent on out is copied verbatim.
func accumulateAttrs(in, out *etree.Element) {
	if in == nil {
		return
	}
	for _, name := range sizeCounters {
		attr := in.SelectAttr(name)
		if attr == nil {
			continue
		}
		existing := out.SelectAttr(name)
		if existing == nil {
			out.CreateAttr(name, attr.Value)
			continue
		}
		sum := atoi(existing.Value) + atoi(attr.Value)
		out.CreateAttr(name, strconv.Itoa(sum))
	}
}

func atoi(value string) int {
	ret, _ := strconv.Atoi(value)
	return ret
}

func contains(list []string, item string) bool {
	for _, candidate := range list {
		if candidate == item {
			return true
		}
	}
	return false
}
