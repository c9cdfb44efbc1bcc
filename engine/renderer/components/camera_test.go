package components

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/wireframe/engine/math"
)

func TestCameraValidate(t *testing.T) {
	tests := []struct {
		name string
		cam  *Camera
		ok   bool
	}{
		{"default", NewCamera(1280, 720, DEFAULT_CAMERA_FOV), true},
		{"zero width", NewCamera(0, 720, 47), false},
		{"negative height", NewCamera(1280, -1, 47), false},
		{"zero fov", NewCamera(1280, 720, 0), false},
		{"straight angle", NewCamera(1280, 720, 180), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cam.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidCamera) {
				t.Fatalf("Validate() = %v, want ErrInvalidCamera", err)
			}
		})
	}
}

func TestCameraSetSize(t *testing.T) {
	c := NewCamera(1280, 720, 47)
	c.SetSize(640, 480)
	if c.Width != 640 || c.Height != 480 {
		t.Fatalf("SetSize: got %dx%d", c.Width, c.Height)
	}
	got := c.Project(math.NewVec3Zero())
	if !got.Compare(math.NewVec2(320, 240), 1e-4) {
		t.Fatalf("Project(origin) = %v, want viewport center", got)
	}
}
