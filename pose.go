package urdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ParseVector3 parses a whitespace-separated triple of decimal floats,
// locale-independently.
func ParseVector3(s string) (Vector3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Vector3{}, fmt.Errorf("expected 3 components, got %d in %q", len(fields), s)
	}
	var out [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = v
	}
	return Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// ParsePose reads an origin-style element. Both the xyz and rpy
// attributes are optional and default to their identity components, so a
// minimal or empty element yields the identity transform. A present but
// malformed attribute is an error.
func ParsePose(el *etree.Element) (Pose, error) {
	pose := IdentityPose()
	if attr := el.SelectAttr("xyz"); attr != nil {
		v, err := ParseVector3(attr.Value)
		if err != nil {
			return IdentityPose(), fmt.Errorf("malformed xyz: %w", err)
		}
		pose.Position = v
	}
	if attr := el.SelectAttr("rpy"); attr != nil {
		v, err := ParseVector3(attr.Value)
		if err != nil {
			return IdentityPose(), fmt.Errorf("malformed rpy: %w", err)
		}
		pose.Orientation = NewRotationFromRPY(v.X, v.Y, v.Z)
	}
	return pose, nil
}

// exportPose writes the xyz and rpy attributes of an origin element.
func exportPose(p Pose, el *etree.Element) {
	el.CreateAttr("xyz", formatTriple(p.Position.X, p.Position.Y, p.Position.Z))
	roll, pitch, yaw := p.Orientation.RPY()
	el.CreateAttr("rpy", formatTriple(roll, pitch, yaw))
}
