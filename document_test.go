package urdf

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleRobot = `<?xml version="1.0"?>
<robot name="planar_four_bar">
  <link name="base"/>
  <link name="crank"/>
  <link name="coupler"/>
  <link name="rocker"/>
  <loop_constraint name="closure" type="revolute">
    <predecessor link="coupler">
      <origin xyz="0.2 0 0" rpy="0 0 0"/>
    </predecessor>
    <successor link="rocker">
      <origin xyz="0 0 0.1" rpy="0 0 1.2"/>
    </successor>
    <axis xyz="0 0 1"/>
  </loop_constraint>
  <coupling_constraint name="gear_pair">
    <predecessor link="crank"/>
    <successor link="rocker"/>
    <ratio value="3"/>
  </coupling_constraint>
</robot>`

func TestParseModel(t *testing.T) {
	m, err := ParseModel(strings.NewReader(sampleRobot))
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}

	if m.Name != "planar_four_bar" {
		t.Errorf("name = %q", m.Name)
	}
	if len(m.Links) != 4 || m.Links[0].Name != "base" {
		t.Errorf("links = %v", m.Links)
	}
	if len(m.Constraints) != 2 {
		t.Fatalf("constraints = %d, want 2", len(m.Constraints))
	}

	loop, ok := m.Constraints[0].(*LoopConstraint)
	if !ok {
		t.Fatalf("first constraint is %T, want loop", m.Constraints[0])
	}
	if loop.Type != LoopRevolute || loop.Axis != (Vector3{0, 0, 1}) {
		t.Errorf("loop = %+v", loop)
	}

	coupling, ok := m.Constraints[1].(*CouplingConstraint)
	if !ok {
		t.Fatalf("second constraint is %T, want coupling", m.Constraints[1])
	}
	if coupling.Ratio != 3 {
		t.Errorf("ratio = %v, want 3", coupling.Ratio)
	}
}

func TestParseModel_DuplicateConstraintName(t *testing.T) {
	src := `<robot name="r">
		<coupling_constraint name="c"><predecessor link="a"/><successor link="b"/></coupling_constraint>
		<coupling_constraint name="c"><predecessor link="a"/><successor link="b"/></coupling_constraint>
	</robot>`
	if _, err := ParseModel(strings.NewReader(src)); err == nil {
		t.Fatal("expected duplicate-name error")
	}
}

func TestParseModel_BadRoot(t *testing.T) {
	if _, err := ParseModel(strings.NewReader(`<model name="r"/>`)); err == nil {
		t.Fatal("expected error for non-robot root")
	}
}

func TestParseModel_PropagatesConstraintErrors(t *testing.T) {
	src := `<robot name="r">
		<loop_constraint type="revolute"><predecessor link="a"/><successor link="b"/></loop_constraint>
	</robot>`
	_, err := ParseModel(strings.NewReader(src))
	wantCode(t, err, ErrMissingName)
}

func TestWriteModel_RoundTrip(t *testing.T) {
	m, err := ParseModel(strings.NewReader(sampleRobot))
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteModel(&buf, m); err != nil {
		t.Fatalf("WriteModel failed: %v", err)
	}

	again, err := ParseModel(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if diff := cmp.Diff(m, again, approx); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestModelFile_GzipRoundTrip(t *testing.T) {
	m, err := ParseModel(strings.NewReader(sampleRobot))
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "robot.urdf.gz")
	if err := SaveModelFile(path, m); err != nil {
		t.Fatalf("SaveModelFile failed: %v", err)
	}

	loaded, err := LoadModelFile(path)
	if err != nil {
		t.Fatalf("LoadModelFile failed: %v", err)
	}
	if diff := cmp.Diff(m, loaded, approx); diff != "" {
		t.Errorf("gzip round-trip mismatch (-want +got):\n%s", diff)
	}
}
