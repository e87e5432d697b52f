package engine

// ResourceKind tags what a named resource is expected to be
type ResourceKind uint8

const (
	ResMesh ResourceKind = iota + 1
	ResMaterial
	ResShader
	ResTexture
)

func (k ResourceKind) String() string {
	switch k {
	case ResMesh:
		return "mesh"
	case ResMaterial:
		return "material"
	case ResShader:
		return "shader"
	case ResTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// AssetSource resolves named resources to opaque handles
type AssetSource interface {
	Resource(name string, kind ResourceKind) (any, error)
}

// Releaser is implemented by component data, entity payloads and subsystem data that hold resources
// Release is called exactly once when the owner is destroyed
type Releaser interface {
	Release()
}
