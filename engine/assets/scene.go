package assets

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

var (
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidVector = errors.New("vector fields need exactly 3 components")
	ErrInvalidScene  = errors.New("invalid scene")
)

var (
	DefaultBackground = color.RGBA{A: 0xff}
	DefaultColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

/** @brief A mesh instance placed in the world. */
type Entity struct {
	ID   core.ID
	Name string
	Mesh *metadata.Mesh
	/** @brief The transform handed to the renderer. Its rotation follows Rotation. */
	Transform *math.Transform
	/** @brief The current Euler rotation in radians. */
	Rotation math.Vec3
	/** @brief Radians per second added to Rotation on each axis. */
	Spin    math.Vec3
	Options renderer.DrawOptions
}

// Advance spins the entity by dt seconds.
func (e *Entity) Advance(dt float64) {
	e.Rotation = e.Rotation.Add(e.Spin.MulScalar(float32(dt)))
	e.Transform.SetEulerRotation(e.Rotation)
}

/** @brief Everything needed to draw a frame. */
type Scene struct {
	Name string
	/** @brief The file the scene was loaded from; empty for the built-in scene. */
	Path       string
	Camera     *components.Camera
	Background color.RGBA
	Entities   []*Entity
}

// Update advances every entity by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, e := range s.Entities {
		e.Advance(dt)
	}
}

// DefaultScene is the classic demo: a white cube three units in front of
// the camera spinning one radian per second around every axis.
func DefaultScene() *Scene {
	return &Scene{
		Name:       "default",
		Camera:     components.NewCamera(1280, 720, components.DEFAULT_CAMERA_FOV),
		Background: DefaultBackground,
		Entities: []*Entity{
			{
				ID:        core.IdentifierAquireNewID(),
				Name:      metadata.CubeGeometryName,
				Mesh:      metadata.NewCubeMesh(),
				Transform: math.TransformFromPosition(math.NewVec3(0, 0, 3)),
				Spin:      math.NewVec3One(),
				Options:   renderer.DrawOptions{Cull: renderer.CullBackface, Color: DefaultColor},
			},
		},
	}
}

// LoadScene reads a scene file and every OBJ model it references. All of
// them are watched for changes.
func (am *AssetManager) LoadScene(path string) (*Scene, error) {
	res, err := am.LoadAsset(path, nil)
	if err != nil {
		return nil, err
	}
	cfg, ok := res.Data.(*metadata.SceneConfig)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a scene file", ErrInvalidScene, path)
	}

	dir := filepath.Dir(res.FullPath)
	scene, err := BuildScene(cfg, func(ref string) (*metadata.Mesh, error) {
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, ref)
		}
		model, err := am.LoadAsset(ref, nil)
		if err != nil {
			return nil, err
		}
		mesh, ok := model.Data.(*metadata.Mesh)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a model", ErrInvalidScene, ref)
		}
		return mesh, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	scene.Path = res.FullPath
	return scene, nil
}

/**
 * @brief Turns a decoded scene file into a Scene.
 * @param cfg The decoded scene.
 * @param loadModel Resolves mesh references that are not built-in names.
 * @return The scene, or the first invalid field.
 */
func BuildScene(cfg *metadata.SceneConfig, loadModel func(ref string) (*metadata.Mesh, error)) (*Scene, error) {
	scene := &Scene{
		Name:       cfg.Name,
		Camera:     components.NewCamera(1280, 720, components.DEFAULT_CAMERA_FOV),
		Background: DefaultBackground,
	}
	if cfg.Camera.Width > 0 && cfg.Camera.Height > 0 {
		scene.Camera.SetSize(cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Camera.FOV != 0 {
		scene.Camera.SetFOV(cfg.Camera.FOV)
	}
	if err := scene.Camera.Validate(); err != nil {
		return nil, err
	}

	bg, err := ParseColor(cfg.Background, DefaultBackground)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	scene.Background = bg

	for i, ec := range cfg.Entities {
		e, err := buildEntity(ec, loadModel)
		if err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, ec.Name, err)
		}
		scene.Entities = append(scene.Entities, e)
	}
	return scene, nil
}

func buildEntity(ec metadata.EntityConfig, loadModel func(ref string) (*metadata.Mesh, error)) (*Entity, error) {
	if ec.Mesh == "" {
		return nil, fmt.Errorf("%w: missing mesh", ErrInvalidScene)
	}
	mesh, ok := metadata.BuiltinMesh(ec.Mesh)
	if !ok {
		if loadModel == nil {
			return nil, fmt.Errorf("%w: unknown mesh %q", ErrInvalidScene, ec.Mesh)
		}
		m, err := loadModel(ec.Mesh)
		if err != nil {
			return nil, err
		}
		mesh = m
	}

	position, err := vec3From("position", ec.Position, math.NewVec3Zero())
	if err != nil {
		return nil, err
	}
	degrees, err := vec3From("rotation", ec.Rotation, math.NewVec3Zero())
	if err != nil {
		return nil, err
	}
	scale, err := vec3From("scale", ec.Scale, math.NewVec3One())
	if err != nil {
		return nil, err
	}
	spin, err := vec3From("spin", ec.Spin, math.NewVec3Zero())
	if err != nil {
		return nil, err
	}
	c, err := ParseColor(ec.Color, DefaultColor)
	if err != nil {
		return nil, err
	}
	cull, err := renderer.ParseCullMode(ec.Cull)
	if err != nil {
		return nil, err
	}

	rotation := math.NewVec3(math.DegToRad(degrees.X), math.DegToRad(degrees.Y), math.DegToRad(degrees.Z))
	name := ec.Name
	if name == "" {
		name = mesh.Name
	}
	return &Entity{
		ID:        core.IdentifierAquireNewID(),
		Name:      name,
		Mesh:      mesh,
		Transform: math.TransformFromPositionRotationScale(position, math.NewQuatFromEuler(rotation), scale),
		Rotation:  rotation,
		Spin:      spin,
		Options: renderer.DrawOptions{
			Cull:      cull,
			BackEdges: ec.BackEdges,
			Color:     c,
			Fill:      ec.Fill,
		},
	}, nil
}

func vec3From(field string, v []float32, def math.Vec3) (math.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return math.NewVec3(v[0], v[1], v[2]), nil
	}
	return math.Vec3{}, fmt.Errorf("%s: %w, got %d", field, ErrInvalidVector, len(v))
}

// ParseColor reads "#rrggbb" or "#rrggbbaa" with straight alpha and returns
// the alpha premultiplied color. The empty string yields def.
func ParseColor(s string, def color.RGBA) (color.RGBA, error) {
	if s == "" {
		return def, nil
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
