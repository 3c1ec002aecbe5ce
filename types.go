package urdf

// LoopType identifies the joint-like relationship a loop constraint
// imposes between its two links.
type LoopType uint8

const (
	LoopUnknown LoopType = iota
	LoopPlanar
	LoopRevolute
	LoopContinuous
	LoopPrismatic
	LoopFixed
)

// loopTypeNames is the single bidirectional vocabulary shared by the
// parser and the exporter. loopTypesByName is derived from it so the two
// directions cannot drift apart.
var loopTypeNames = map[LoopType]string{
	LoopPlanar:     "planar",
	LoopRevolute:   "revolute",
	LoopContinuous: "continuous",
	LoopPrismatic:  "prismatic",
	LoopFixed:      "fixed",
}

var loopTypesByName = func() map[string]LoopType {
	m := make(map[string]LoopType, len(loopTypeNames))
	for t, name := range loopTypeNames {
		m[name] = t
	}
	return m
}()

// String returns the document vocabulary name of the type, or "unknown"
// for a tag outside the closed set.
func (t LoopType) String() string {
	if name, ok := loopTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ConstraintBase carries the fields shared by every constraint kind.
type ConstraintBase struct {
	// Name uniquely identifies the constraint within its document.
	Name string

	// PredecessorLink and SuccessorLink name the two links tied together
	// by the constraint. Either may be empty when the document leaves
	// the reference unresolved (the link might be the root, whose
	// identity is resolved by the model assembler).
	PredecessorLink string
	SuccessorLink   string
}

// Base returns the shared constraint fields.
func (b *ConstraintBase) Base() *ConstraintBase { return b }

// LoopConstraint closes a kinematic loop between a predecessor and
// successor link.
type LoopConstraint struct {
	ConstraintBase

	// Type is the joint-like relationship of the loop. Required on
	// parse; there is no default.
	Type LoopType

	// Axis is meaningful only when Type != LoopFixed. It defaults to
	// (1, 0, 0) when the document omits the axis element.
	Axis Vector3

	// PredecessorOrigin and SuccessorOrigin are the transforms from each
	// link frame to the constraint frame. Absent origin elements default
	// to the identity transform.
	PredecessorOrigin Pose
	SuccessorOrigin   Pose
}

// CouplingConstraint expresses a fixed ratio between two joint motions,
// such as a gear coupling.
type CouplingConstraint struct {
	ConstraintBase

	// Ratio is zero when the document does not specify one; a coupling
	// without an explicit ratio is a valid pass-through reference.
	Ratio float64
}

// Constraint is the closed set of constraint kinds. Only LoopConstraint
// and CouplingConstraint implement it; consumers dispatch with an
// exhaustive type switch.
type Constraint interface {
	// Base returns the fields shared by all constraint kinds.
	Base() *ConstraintBase

	sealedConstraint()
}

func (*LoopConstraint) sealedConstraint() {}

func (*CouplingConstraint) sealedConstraint() {}

// Link is a named link declaration discovered by the document parser.
// Geometry and inertial data are outside this package's scope.
type Link struct {
	Name string
}

// Model is a parsed robot description: the robot name, its declared
// links, and the constraints that close loops or couple joints outside
// the primary tree.
type Model struct {
	Name        string
	Links       []Link
	Constraints []Constraint
}
