// Package format is the reference implementation of the document
// container spec.md §6 treats as an external collaborator: a
// Preferences block plus a flat list of ObjectRecords, serialized as
// either a human-editable YAML text file (.belcadx) or the same
// payload gzip-compressed (.belcad). The kernel's own contribution is
// shape.ToRecord/shape.FromRecord; everything else here is plumbing
// kept only so the save/load/save round trip in spec.md §8 is
// testable without a real application shell.
package format

import (
	"bytes"
	"compress/gzip"
	"image/color"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/shape"
)

// Preferences carries the display settings that live alongside a
// document's objects but aren't object state themselves.
type Preferences struct {
	Unit      document.Unit `yaml:"unit"`
	Precision int           `yaml:"precision"`
}

// ObjectStyle is the wire form of document.Style: color split into
// plain uint8 channels so it marshals the same way across YAML
// libraries, rather than relying on color.RGBA's own field layout.
type ObjectStyle struct {
	R         uint8   `yaml:"r"`
	G         uint8   `yaml:"g"`
	B         uint8   `yaml:"b"`
	A         uint8   `yaml:"a"`
	LineWidth float64 `yaml:"line_width"`
	Layer     string  `yaml:"layer,omitempty"`
	Visible   bool    `yaml:"visible"`
	Locked    bool    `yaml:"locked"`
}

// ObjectRecord is the wire form of one document.CadObject.
type ObjectRecord struct {
	ID     int64        `yaml:"id"`
	Shape  shape.Record `yaml:"shape"`
	Style  ObjectStyle  `yaml:"style"`
	Parent *int64       `yaml:"parent,omitempty"`
}

// Container is the full contents of a saved document.
type Container struct {
	Preferences Preferences    `yaml:"preferences"`
	Objects     []ObjectRecord `yaml:"objects"`
}

// ToContainer snapshots doc's objects, in Z-order, into a Container.
func ToContainer(doc *document.Document, prefs Preferences) (Container, error) {
	objs := doc.Objects()
	out := Container{Preferences: prefs, Objects: make([]ObjectRecord, 0, len(objs))}
	for _, obj := range objs {
		rec, err := shape.ToRecord(obj.Shape)
		if err != nil {
			return Container{}, err
		}
		var parent *int64
		if obj.Parent != nil {
			v := int64(*obj.Parent)
			parent = &v
		}
		out.Objects = append(out.Objects, ObjectRecord{
			ID:    int64(obj.ID),
			Shape: rec,
			Style: ObjectStyle{
				R: obj.Style.Color.R, G: obj.Style.Color.G,
				B: obj.Style.Color.B, A: obj.Style.Color.A,
				LineWidth: obj.Style.LineWidth,
				Layer:     obj.Style.Layer,
				Visible:   obj.Style.Visible,
				Locked:    obj.Style.Locked,
			},
			Parent: parent,
		})
	}
	return out, nil
}

// ApplyContainer rebuilds a fresh Document from c. Object identity is
// not preserved byte-for-byte (a Document always allocates its own
// monotonic IDs), but Z-order and parent/child structure are, since
// objects are added in c's stored order and parent links are resolved
// by original ID after every object exists.
func ApplyContainer(c Container) (*document.Document, error) {
	doc := document.New()
	idMap := make(map[int64]document.ObjectID, len(c.Objects))
	parents := make(map[document.ObjectID]int64, len(c.Objects))

	for _, rec := range c.Objects {
		s, err := shape.FromRecord(rec.Shape)
		if err != nil {
			return nil, err
		}
		style := document.Style{
			Color:     color.RGBA{R: rec.Style.R, G: rec.Style.G, B: rec.Style.B, A: rec.Style.A},
			LineWidth: rec.Style.LineWidth,
			Layer:     rec.Style.Layer,
			Visible:   rec.Style.Visible,
			Locked:    rec.Style.Locked,
		}
		id := doc.Add(s, style)
		idMap[rec.ID] = id
		if rec.Parent != nil {
			parents[id] = *rec.Parent
		}
	}
	for child, parentOldID := range parents {
		if parentID, ok := idMap[parentOldID]; ok {
			doc.SetParent(child, &parentID)
		}
	}
	return doc, nil
}

// SaveText renders c as YAML (.belcadx).
func SaveText(c Container) ([]byte, error) { return yaml.Marshal(c) }

// LoadText parses YAML (.belcadx) produced by SaveText.
func LoadText(data []byte) (Container, error) {
	var c Container
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Container{}, err
	}
	return c, nil
}

// SaveBundle renders c as gzip-compressed YAML (.belcad).
func SaveBundle(c Container) ([]byte, error) {
	text, err := SaveText(c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(text); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadBundle parses gzip-compressed YAML (.belcad) produced by SaveBundle.
func LoadBundle(data []byte) (Container, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return Container{}, err
	}
	defer gz.Close()
	text, err := io.ReadAll(gz)
	if err != nil {
		return Container{}, err
	}
	return LoadText(text)
}
