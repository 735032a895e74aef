package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"raycaster/internal/grid"
	"raycaster/internal/mathutil"
	"raycaster/internal/raycast"
)

//go:embed default.yaml
var defaultYAML []byte

// CameraDef is the starting viewpoint in map-grid units and radians.
type CameraDef struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// Rotation is the fixed schedule the camera turns on.
type Rotation struct {
	Frames      int     `yaml:"frames"`
	StepDegrees float64 `yaml:"step_degrees"`
}

// Scene describes the map and camera schedule of one render run.
type Scene struct {
	Rows       []string  `yaml:"map"`
	Start      CameraDef `yaml:"camera"`
	FOVDegrees float64   `yaml:"fov_degrees"`
	Rotation   Rotation  `yaml:"rotation"`

	grid *grid.Map
}

// Default returns the embedded reference scene.
func Default() *Scene {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default: %v", err))
	}
	return s
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Parse decodes and validates a YAML scene. Missing fov and rotation
// fields take the reference values.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if s.FOVDegrees <= 0 {
		s.FOVDegrees = 60
	}
	if s.FOVDegrees >= 180 {
		return nil, fmt.Errorf("scene: fov %.1f° must be below 180°", s.FOVDegrees)
	}
	if s.Rotation.Frames <= 0 {
		s.Rotation.Frames = 360
	}
	if s.Rotation.StepDegrees == 0 {
		s.Rotation.StepDegrees = 360 / float64(s.Rotation.Frames)
	}

	m, err := grid.FromRows(s.Rows)
	if err != nil {
		return nil, fmt.Errorf("scene: map: %w", err)
	}
	if x, y, open := m.BorderGap(); open {
		return nil, fmt.Errorf("scene: map: border cell (%d, %d) is not a wall", x, y)
	}
	if !m.Contains(s.Start.X, s.Start.Y) {
		return nil, fmt.Errorf("scene: camera (%g, %g) outside %dx%d map", s.Start.X, s.Start.Y, m.Width(), m.Height())
	}
	s.grid = m
	return &s, nil
}

// Map returns the parsed grid.
func (s *Scene) Map() *grid.Map { return s.grid }

// Camera returns the starting camera, before any rotation.
func (s *Scene) Camera() raycast.Camera {
	return raycast.Camera{
		X:     s.Start.X,
		Y:     s.Start.Y,
		Angle: s.Start.Angle,
		FOV:   mathutil.Deg2Rad(s.FOVDegrees),
	}
}

// CameraAt returns the camera for frame n. The schedule turns before
// drawing, so frame 0 is already one step past the starting angle.
func (s *Scene) CameraAt(frame int) raycast.Camera {
	cam := s.Camera()
	cam.Rotate(float64(frame+1) * mathutil.Deg2Rad(s.Rotation.StepDegrees))
	return cam
}

// Frames returns the frame indices of the full schedule.
func (s *Scene) Frames() []int {
	frames := make([]int, s.Rotation.Frames)
	for i := range frames {
		frames[i] = i
	}
	return frames
}
