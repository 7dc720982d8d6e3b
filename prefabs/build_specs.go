package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image   string   `yaml:"image"`
	OriginX float64  `yaml:"origin_x"`
	OriginY float64  `yaml:"origin_y"`
	Alpha   *float64 `yaml:"alpha"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	LinearDamping float64 `yaml:"linear_damping"`
	Static        bool    `yaml:"static"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

// CollisionLayerComponentSpec either names a role whose default collider is
// used, or lists explicit bits.
type CollisionLayerComponentSpec struct {
	Role     string `yaml:"role"`
	Category uint32 `yaml:"category"`
	Contact  uint32 `yaml:"contact"`
	Collide  uint32 `yaml:"collide"`
}

type RoleComponentSpec struct {
	Kind string `yaml:"kind"`
}

type SpinComponentSpec struct {
	RadiansPerSecond float64 `yaml:"radians_per_second"`
}
