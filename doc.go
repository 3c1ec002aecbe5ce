// Package urdf parses and serializes kinematic constraint descriptions
// embedded in robot-description documents.
//
// Constraints are declarative elements that tie two links (or two joints)
// together outside the tree-structured parent/child hierarchy:
//   - Loop constraints close a kinematic loop between a predecessor and
//     successor link via a typed joint-like relationship (revolute,
//     prismatic, ...) and two frame transforms.
//   - Coupling constraints express a fixed ratio between two joint
//     motions, such as a gear or rack coupling.
//
// # Parsing
//
// The two variant parsers accept an XML element and return a fully
// populated value or a typed error:
//
//	loop, err := urdf.ParseLoopConstraint(el)
//	coupling, err := urdf.ParseCouplingConstraint(el)
//
// Parsing is strict by default. ParseOptions enables tolerant handling of
// malformed endpoint origins and injects a Logger for the informational
// and debug emissions of the defaulting rules.
//
// # Export
//
// ExportConstraint is the inverse: it emits an element that re-parses to
// a value equivalent for all required fields. Fields that fall back to
// documented defaults on absence (endpoint origins, the loop axis) are
// emitted explicitly, so exported documents always round-trip.
//
// # Documents
//
// ParseModel and WriteModel handle whole robot descriptions, discovering
// <loop_constraint> and <coupling_constraint> elements under the <robot>
// root and dispatching to the variant parsers by tag. LoadModelFile and
// SaveModelFile add transparent gzip handling for .gz paths.
//
// The package never resolves link names against a link graph, detects
// cycles, or validates physical plausibility of axes and ratios; those
// concerns belong to the consumer of the parsed model.
package urdf
