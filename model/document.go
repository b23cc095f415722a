package model

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// RootTag is the required top-level tag of every scene description.
const RootTag = "mujoco"

// Recognized section tags, in the order they are merged.
const (
	SectionCompiler  = "compiler"
	SectionSize      = "size"
	SectionOption    = "option"
	SectionDefault   = "default"
	SectionVisual    = "visual"
	SectionAsset     = "asset"
	SectionContact   = "contact"
	SectionActuator  = "actuator"
	SectionSensor    = "sensor"
	SectionWorldbody = "worldbody"
)

// Sections lists the recognized section tags in merge order.
var Sections = []string{
	SectionCompiler,
	SectionSize,
	SectionOption,
	SectionDefault,
	SectionVisual,
	SectionAsset,
	SectionContact,
	SectionActuator,
	SectionSensor,
	SectionWorldbody,
}

// Document is one loaded scene description.
type Document struct {
	Root        *etree.Element
	Path        string
	Fingerprint uint64
}

// Load reads a scene description from path and parses it into a mutable
// element tree. It fails when the file cannot be read or parsed, or when the
// document lacks the expected root tag.
func Load(ctx context.Context, path string) (*Document, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", path, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	root := doc.SelectElement(RootTag)
	if root == nil {
		return nil, fmt.Errorf("no %v root node in %v", RootTag, path)
	}
	fingerprint, err := Fingerprint(data)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint %v: %w", path, err)
	}
	return &Document{Root: root, Path: path, Fingerprint: fingerprint}, nil
}

// Dir returns the absolute directory containing the document source file.
func (d *Document) Dir() string {
	abs, err := filepath.Abs(d.Path)
	if err != nil {
		return filepath.Dir(d.Path)
	}
	return filepath.Dir(abs)
}

// Save serializes doc with stable 4-space indentation and writes it to path.
func Save(ctx context.Context, doc *etree.Document, path string) error {
	doc.Indent(4)
	data, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize %v: %w", path, err)
	}
	fs := afs.New()
	if err := fs.Upload(ctx, path, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
