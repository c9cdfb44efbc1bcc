package metadata

/** @brief The viewport section of a scene file. */
type CameraConfig struct {
	Width  int     `toml:"width" yaml:"width"`
	Height int     `toml:"height" yaml:"height"`
	FOV    float32 `toml:"fov" yaml:"fov"`
}

/**
 * @brief One drawable entry of a scene file. Vector fields hold three
 * components or are left out.
 */
type EntityConfig struct {
	Name string `toml:"name" yaml:"name"`
	/** @brief A built-in geometry name or a path to an OBJ file, relative to the scene. */
	Mesh string `toml:"mesh" yaml:"mesh"`
	/** @brief World position. */
	Position []float32 `toml:"position" yaml:"position"`
	/** @brief Initial Euler rotation in degrees. */
	Rotation []float32 `toml:"rotation" yaml:"rotation"`
	/** @brief Per-axis scale, defaults to 1. */
	Scale []float32 `toml:"scale" yaml:"scale"`
	/** @brief Rotation speed in radians per second around each axis. */
	Spin []float32 `toml:"spin" yaml:"spin"`
	/** @brief Edge color as #rrggbb or #rrggbbaa, defaults to white. */
	Color string `toml:"color" yaml:"color"`
	/** @brief none, backface or frontface. Defaults to backface. */
	Cull      string `toml:"cull" yaml:"cull"`
	Fill      bool   `toml:"fill" yaml:"fill"`
	BackEdges bool   `toml:"back_edges" yaml:"back_edges"`
}

/** @brief The decoded contents of a scene file. */
type SceneConfig struct {
	Name       string         `toml:"name" yaml:"name"`
	Background string         `toml:"background" yaml:"background"`
	Camera     CameraConfig   `toml:"camera" yaml:"camera"`
	Entities   []EntityConfig `toml:"entities" yaml:"entities"`
}
