package urdf

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// ParseOptions configures constraint parsing.
type ParseOptions struct {
	// Logger receives the informational and debug emissions of the
	// defaulting rules. Nil means no logging.
	Logger Logger

	// Tolerant downgrades a malformed endpoint origin to the identity
	// transform with a warning instead of failing the constraint.
	// Strict parsing is the default.
	Tolerant bool
}

// DefaultParseOptions returns strict parsing with no logging.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

func (o ParseOptions) logger() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

// ParseLoopConstraint parses a loop constraint element with default
// options.
func ParseLoopConstraint(el *etree.Element) (*LoopConstraint, error) {
	return ParseLoopConstraintWithOptions(el, DefaultParseOptions())
}

// ParseLoopConstraintWithOptions parses a loop constraint element.
//
// The name attribute is required. Both endpoint elements (predecessor,
// successor) must exist: geometry parsing needs both frames even when
// link names are left unresolved. Absent origin children default to the
// identity transform; the axis child defaults to (1, 0, 0) and is only
// consulted when the type is not fixed.
func ParseLoopConstraintWithOptions(el *etree.Element, opts ParseOptions) (*LoopConstraint, error) {
	log := opts.logger()

	base, err := parseBase(el, log)
	if err != nil {
		return nil, err
	}

	predOrigin, err := parseEndpointOrigin(el, "predecessor", base.Name, opts, log)
	if err != nil {
		return nil, err
	}
	succOrigin, err := parseEndpointOrigin(el, "successor", base.Name, opts, log)
	if err != nil {
		return nil, err
	}

	typeAttr := el.SelectAttr("type")
	if typeAttr == nil {
		return nil, constraintErr(ErrMissingType, base.Name, "type", nil)
	}
	// Exact, case-sensitive vocabulary match. No fuzzy matching.
	typ, ok := loopTypesByName[typeAttr.Value]
	if !ok {
		return nil, constraintErr(ErrUnknownType, base.Name, "type",
			fmt.Errorf("unrecognized loop type %q", typeAttr.Value))
	}

	var axis Vector3
	if typ != LoopFixed {
		axis, err = parseAxis(el, base.Name, log)
		if err != nil {
			return nil, err
		}
	}

	// The value is assembled only here, at the successful-return point;
	// no caller can observe a partially populated constraint.
	return &LoopConstraint{
		ConstraintBase:    base,
		Type:              typ,
		Axis:              axis,
		PredecessorOrigin: predOrigin,
		SuccessorOrigin:   succOrigin,
	}, nil
}

// ParseCouplingConstraint parses a coupling constraint element with
// default options.
func ParseCouplingConstraint(el *etree.Element) (*CouplingConstraint, error) {
	return ParseCouplingConstraintWithOptions(el, DefaultParseOptions())
}

// ParseCouplingConstraintWithOptions parses a coupling constraint
// element. An absent ratio child leaves the ratio unset; a present ratio
// child with a missing or malformed value attribute is an authoring
// error and fails the constraint.
func ParseCouplingConstraintWithOptions(el *etree.Element, opts ParseOptions) (*CouplingConstraint, error) {
	log := opts.logger()

	base, err := parseBase(el, log)
	if err != nil {
		return nil, err
	}

	var ratio float64
	if ratioEl := el.SelectElement("ratio"); ratioEl != nil {
		attr := ratioEl.SelectAttr("value")
		if attr == nil {
			return nil, constraintErr(ErrInvalidRatio, base.Name, "ratio",
				errors.New("ratio element without value attribute"))
		}
		ratio, err = strconv.ParseFloat(attr.Value, 64)
		if err != nil {
			return nil, constraintErr(ErrInvalidRatio, base.Name, "ratio", err)
		}
	} else {
		log.Debugf("constraint %q: no ratio element, ratio left unset", base.Name)
	}

	return &CouplingConstraint{ConstraintBase: base, Ratio: ratio}, nil
}

// parseBase reads the fields shared by every constraint kind: the
// required name attribute and the optional predecessor/successor link
// references. It never inspects kind-specific children.
func parseBase(el *etree.Element, log Logger) (ConstraintBase, error) {
	nameAttr := el.SelectAttr("name")
	if nameAttr == nil {
		return ConstraintBase{}, constraintErr(ErrMissingName, UnnamedConstraint, "name", nil)
	}

	base := ConstraintBase{Name: nameAttr.Value}
	base.PredecessorLink = parseEndpointLink(el, "predecessor", base.Name, log)
	base.SuccessorLink = parseEndpointLink(el, "successor", base.Name, log)
	return base, nil
}

// parseEndpointLink reads the link attribute of an optional endpoint
// element. A missing attribute is not an error: the link might be the
// root, whose identity is resolved by the model assembler.
func parseEndpointLink(el *etree.Element, tag, name string, log Logger) string {
	ep := el.SelectElement(tag)
	if ep == nil {
		return ""
	}
	attr := ep.SelectAttr("link")
	if attr == nil {
		log.Infof("no %s link name specified for constraint %q, this might be the root", tag, name)
		return ""
	}
	return attr.Value
}

// parseEndpointOrigin locates an endpoint element and its nested origin.
// Unlike parseEndpointLink, the endpoint element itself is required: a
// loop constraint needs both frames to anchor its transforms even when
// the link names are unresolved.
func parseEndpointOrigin(el *etree.Element, tag, name string, opts ParseOptions, log Logger) (Pose, error) {
	ep := el.SelectElement(tag)
	if ep == nil {
		return Pose{}, constraintErr(ErrMissingEndpoint, name, tag, nil)
	}
	origin := ep.SelectElement("origin")
	if origin == nil {
		log.Debugf("constraint %q: no %s origin, defaulting to identity", name, tag)
		return IdentityPose(), nil
	}
	pose, err := ParsePose(origin)
	if err != nil {
		if opts.Tolerant {
			log.Warnf("constraint %q: malformed %s origin, using identity: %v", name, tag, err)
			return IdentityPose(), nil
		}
		return Pose{}, constraintErr(ErrMalformedOrigin, name, tag, err)
	}
	return pose, nil
}

// parseAxis reads the axis child of a loop constraint. An absent child
// or an axis element without an xyz attribute defaults to (1, 0, 0); a
// present but malformed xyz value fails the constraint.
func parseAxis(el *etree.Element, name string, log Logger) (Vector3, error) {
	axisEl := el.SelectElement("axis")
	if axisEl == nil {
		log.Debugf("constraint %q: no axis element, defaulting to (1 0 0)", name)
		return UnitX(), nil
	}
	attr := axisEl.SelectAttr("xyz")
	if attr == nil {
		log.Debugf("constraint %q: axis element without xyz attribute, defaulting to (1 0 0)", name)
		return UnitX(), nil
	}
	v, err := ParseVector3(attr.Value)
	if err != nil {
		return Vector3{}, constraintErr(ErrMalformedAxis, name, "axis", err)
	}
	return v, nil
}
