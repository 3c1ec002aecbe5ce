package urdf

import (
	"math"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func mustElement(t *testing.T, src string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		t.Fatalf("ReadFromString(%q) failed: %v", src, err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatalf("no root element in %q", src)
	}
	return root
}

func TestParseVector3(t *testing.T) {
	tests := []struct {
		input   string
		want    Vector3
		wantErr bool
	}{
		{"1 0 0", Vector3{1, 0, 0}, false},
		{"0 0 1", Vector3{0, 0, 1}, false},
		{"  -1.5\t2.25  3e-2 ", Vector3{-1.5, 2.25, 0.03}, false},
		{"1 2", Vector3{}, true},
		{"1 2 3 4", Vector3{}, true},
		{"", Vector3{}, true},
		{"1 two 3", Vector3{}, true},
		{"1,0,0", Vector3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVector3(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVector3 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePose_EmptyElementIsIdentity(t *testing.T) {
	pose, err := ParsePose(mustElement(t, `<origin/>`))
	if err != nil {
		t.Fatalf("ParsePose failed: %v", err)
	}
	if pose != IdentityPose() {
		t.Errorf("got %+v, want identity", pose)
	}
}

func TestParsePose_Attributes(t *testing.T) {
	pose, err := ParsePose(mustElement(t, `<origin xyz="1 2 3" rpy="0 0 1.5707963267948966"/>`))
	if err != nil {
		t.Fatalf("ParsePose failed: %v", err)
	}
	if pose.Position != (Vector3{1, 2, 3}) {
		t.Errorf("position = %v, want (1 2 3)", pose.Position)
	}
	_, _, yaw := pose.Orientation.RPY()
	if math.Abs(yaw-math.Pi/2) > 1e-12 {
		t.Errorf("yaw = %v, want pi/2", yaw)
	}
}

func TestParsePose_Malformed(t *testing.T) {
	for _, src := range []string{
		`<origin xyz="a b c"/>`,
		`<origin xyz="1 2"/>`,
		`<origin xyz="0 0 0" rpy="1 2"/>`,
	} {
		if _, err := ParsePose(mustElement(t, src)); err == nil {
			t.Errorf("expected error for %s", src)
		}
	}
}

func TestRotationRPYRoundTrip(t *testing.T) {
	angles := []Vector3{
		{0, 0, 0},
		{0.1, 0, 0},
		{0, -0.4, 0},
		{0, 0, 2.5},
		{0.3, -0.2, 1.1},
		{-1.2, 0.7, -2.9},
	}

	for _, a := range angles {
		r := NewRotationFromRPY(a.X, a.Y, a.Z)
		roll, pitch, yaw := r.RPY()
		if math.Abs(roll-a.X) > 1e-9 || math.Abs(pitch-a.Y) > 1e-9 || math.Abs(yaw-a.Z) > 1e-9 {
			t.Errorf("RPY(%v) round-tripped to (%v %v %v)", a, roll, pitch, yaw)
		}
	}
}

func TestFormatTripleCanonical(t *testing.T) {
	got := formatTriple(2.5, 0, -1)
	if got != "2.5 0 -1" {
		t.Errorf("formatTriple = %q, want %q", got, "2.5 0 -1")
	}
	if strings.Contains(formatTriple(0.1, 0.2, 0.3), ",") {
		t.Error("canonical triples must be space-separated")
	}
}
