package urdf

import (
	"fmt"

	"github.com/beevik/etree"
)

// Element tags emitted for each constraint kind. The document parser
// dispatches on these same tags.
const (
	LoopConstraintTag     = "loop_constraint"
	CouplingConstraintTag = "coupling_constraint"
)

// ExportConstraint serializes a constraint to an XML element that
// re-parses to a value equivalent for all required fields.
//
// The predecessor and successor elements always carry a link attribute,
// even when the corresponding name was never set; re-parsing such output
// yields an unset link name, not a failure.
func ExportConstraint(c Constraint) (*etree.Element, error) {
	switch c := c.(type) {
	case *LoopConstraint:
		if c == nil {
			return nil, nilConstraintErr(c)
		}
		return exportLoop(c)
	case *CouplingConstraint:
		if c == nil {
			return nil, nilConstraintErr(c)
		}
		return exportCoupling(c)
	default:
		return nil, constraintErr(ErrUnknownClassType, constraintName(c), "",
			fmt.Errorf("unrecognized constraint value %T", c))
	}
}

func nilConstraintErr(c Constraint) error {
	return constraintErr(ErrUnknownClassType, UnnamedConstraint, "",
		fmt.Errorf("nil %T", c))
}

func exportLoop(c *LoopConstraint) (*etree.Element, error) {
	typeName, ok := loopTypeNames[c.Type]
	if !ok {
		// An untagged or out-of-range type is an internal invariant
		// violation; never emit a partially-tagged element.
		return nil, constraintErr(ErrUnknownType, c.Name, "type",
			fmt.Errorf("unrecognized loop type tag %d", c.Type))
	}

	el := etree.NewElement(LoopConstraintTag)
	el.CreateAttr("name", c.Name)
	el.CreateAttr("type", typeName)
	exportEndpoint(el, "predecessor", c.PredecessorLink, &c.PredecessorOrigin)
	exportEndpoint(el, "successor", c.SuccessorLink, &c.SuccessorOrigin)

	// The axis is emitted even for fixed loops; it is harmless there and
	// ignored on re-parse.
	el.CreateElement("axis").CreateAttr("xyz", c.Axis.String())
	return el, nil
}

func exportCoupling(c *CouplingConstraint) (*etree.Element, error) {
	el := etree.NewElement(CouplingConstraintTag)
	el.CreateAttr("name", c.Name)
	exportEndpoint(el, "predecessor", c.PredecessorLink, nil)
	exportEndpoint(el, "successor", c.SuccessorLink, nil)
	el.CreateElement("ratio").CreateAttr("value", formatFloat(c.Ratio))
	return el, nil
}

func exportEndpoint(parent *etree.Element, tag, link string, origin *Pose) {
	ep := parent.CreateElement(tag)
	ep.CreateAttr("link", link)
	if origin != nil {
		exportPose(*origin, ep.CreateElement("origin"))
	}
}

func constraintName(c Constraint) string {
	if c == nil {
		return UnnamedConstraint
	}
	if b := c.Base(); b != nil && b.Name != "" {
		return b.Name
	}
	return UnnamedConstraint
}
