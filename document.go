package urdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/klauspost/compress/gzip"
)

// ParseModel reads a robot description document from r with default
// options.
func ParseModel(r io.Reader) (*Model, error) {
	return ParseModelWithOptions(r, DefaultParseOptions())
}

// ParseModelWithOptions reads a robot description document from r. It
// collects <link> declarations and dispatches <loop_constraint> and
// <coupling_constraint> elements to the variant parsers. Constraint
// names must be unique within the document.
func ParseModelWithOptions(r io.Reader, opts ParseOptions) (*Model, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read robot document: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "robot" {
		return nil, errors.New("document has no <robot> root element")
	}

	m := &Model{}
	if attr := root.SelectAttr("name"); attr != nil {
		m.Name = attr.Value
	}

	seen := make(map[string]struct{})
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "link":
			attr := child.SelectAttr("name")
			if attr == nil {
				return nil, errors.New("link element without name attribute")
			}
			m.Links = append(m.Links, Link{Name: attr.Value})

		case LoopConstraintTag:
			c, err := ParseLoopConstraintWithOptions(child, opts)
			if err != nil {
				return nil, err
			}
			if err := noteConstraint(seen, c.Name); err != nil {
				return nil, err
			}
			m.Constraints = append(m.Constraints, c)

		case CouplingConstraintTag:
			c, err := ParseCouplingConstraintWithOptions(child, opts)
			if err != nil {
				return nil, err
			}
			if err := noteConstraint(seen, c.Name); err != nil {
				return nil, err
			}
			m.Constraints = append(m.Constraints, c)
		}
	}
	return m, nil
}

func noteConstraint(seen map[string]struct{}, name string) error {
	if _, dup := seen[name]; dup {
		return fmt.Errorf("duplicate constraint name %q", name)
	}
	seen[name] = struct{}{}
	return nil
}

// WriteModel writes m as an indented robot description document.
func WriteModel(w io.Writer, m *Model) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	root := doc.CreateElement("robot")
	root.CreateAttr("name", m.Name)

	for _, l := range m.Links {
		root.CreateElement("link").CreateAttr("name", l.Name)
	}
	for _, c := range m.Constraints {
		el, err := ExportConstraint(c)
		if err != nil {
			return err
		}
		root.AddChild(el)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// LoadModelFile reads a robot description from path. Paths ending in
// .gz are decompressed transparently.
func LoadModelFile(path string) (*Model, error) {
	return LoadModelFileWithOptions(path, DefaultParseOptions())
}

// LoadModelFileWithOptions reads a robot description from path.
func LoadModelFileWithOptions(path string, opts ParseOptions) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return ParseModelWithOptions(r, opts)
}

// SaveModelFile writes m to path, gzip-compressed when the path ends in
// .gz.
func SaveModelFile(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		if err := WriteModel(zw, m); err != nil {
			f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	} else if err := WriteModel(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
