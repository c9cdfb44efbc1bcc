package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Unrecognized files. */
	ResourceTypeNone ResourceType = iota
	/** @brief Wavefront OBJ geometry, loaded into a Mesh. */
	ResourceTypeModel
	/** @brief Scene description (TOML or YAML), loaded into a SceneConfig. */
	ResourceTypeScene
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeModel:
		return "model"
	case ResourceTypeScene:
		return "scene"
	}
	return "none"
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The type of the loader which handled this resource. */
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the source file in bytes. */
	DataSize uint64
	/** @brief The resource data: *Mesh or *SceneConfig. */
	Data interface{}
}
