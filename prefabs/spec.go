package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// MazeFile is the tuning prefab every maze is built from.
const MazeFile = "maze.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	return LoadSpecOver(filename, zero)
}

// LoadSpecOver decodes filename on top of base. Keys the file leaves out keep
// base's values, so an explicit zero is told apart from a missing key.
func LoadSpecOver[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MazeSpec holds every tunable of the maze. Lengths are scene units and
// times are seconds.
type MazeSpec struct {
	Scene      SizeSpec     `yaml:"scene"`
	Start      PointSpec    `yaml:"start"`
	Background ColorSpec    `yaml:"background"`
	Avatar     AvatarSpec   `yaml:"avatar"`
	Wall       WallSpec     `yaml:"wall"`
	Hazard     HazardSpec   `yaml:"hazard"`
	Pickup     MarkerSpec   `yaml:"pickup"`
	Goal       MarkerSpec   `yaml:"goal"`
	Sequence   SequenceSpec `yaml:"sequence"`
	Gravity    GravitySpec  `yaml:"gravity"`
	Layers     LayersSpec   `yaml:"render_layers"`
	HUD        HUDSpec      `yaml:"hud"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AvatarSpec struct {
	Radius        float64   `yaml:"radius"`
	Mass          float64   `yaml:"mass"`
	LinearDamping float64   `yaml:"linear_damping"`
	Friction      float64   `yaml:"friction"`
	Elasticity    float64   `yaml:"elasticity"`
	Color         ColorSpec `yaml:"color"`
}

type WallSpec struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Friction   float64   `yaml:"friction"`
	Elasticity float64   `yaml:"elasticity"`
	Color      ColorSpec `yaml:"color"`
}

type HazardSpec struct {
	Radius           float64   `yaml:"radius"`
	RadiansPerSecond float64   `yaml:"radians_per_second"`
	Color            ColorSpec `yaml:"color"`
	Accent           ColorSpec `yaml:"accent"`
}

type MarkerSpec struct {
	Radius float64   `yaml:"radius"`
	Color  ColorSpec `yaml:"color"`
}

type SequenceSpec struct {
	DeathSeconds float64 `yaml:"death_seconds"`
	GoalSeconds  float64 `yaml:"goal_seconds"`
	ShrinkScale  float64 `yaml:"shrink_scale"`
}

type GravitySpec struct {
	PointerDivisor float64 `yaml:"pointer_divisor"`
	TiltScale      float64 `yaml:"tilt_scale"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	SensorDelayMS  int     `yaml:"sensor_delay_ms"`
}

type LayersSpec struct {
	Background int `yaml:"background"`
	Static     int `yaml:"static"`
	Items      int `yaml:"items"`
	Avatar     int `yaml:"avatar"`
}

type HUDSpec struct {
	TextColor  ColorSpec `yaml:"text_color"`
	PanelColor ColorSpec `yaml:"panel_color"`
	Padding    int       `yaml:"padding"`
}

// ColorSpec accepts either a colornames name ("steelblue") or a hex value
// ("#rrggbb" or "#rrggbbaa").
type ColorSpec struct {
	color.RGBA
	set bool
}

func Color(c color.RGBA) ColorSpec {
	return ColorSpec{RGBA: c, set: true}
}

func (c ColorSpec) IsSet() bool {
	return c.set
}

func (c *ColorSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = Color(rgba)
	return nil
}

func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if named, ok := colornames.Map[name]; ok {
		return named, nil
	}
	if !strings.HasPrefix(name, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}

	hex := strings.TrimPrefix(name, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, err
	}
	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.RGBA{}, err
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// DefaultMazeSpec is the built-in tuning: a 1024x768 scene of 64 unit cells
// with the avatar starting in the top-left corridor.
func DefaultMazeSpec() MazeSpec {
	return MazeSpec{
		Scene:      SizeSpec{Width: 1024, Height: 768},
		Start:      PointSpec{X: 96, Y: 672},
		Background: Color(colornames.Burlywood),
		Avatar: AvatarSpec{
			Radius:        24,
			Mass:          1,
			LinearDamping: 0.5,
			Friction:      0.2,
			Elasticity:    0.2,
			Color:         Color(colornames.Steelblue),
		},
		Wall: WallSpec{
			Width:      64,
			Height:     64,
			Friction:   0.2,
			Elasticity: 0.2,
			Color:      Color(colornames.Saddlebrown),
		},
		Hazard: HazardSpec{
			Radius:           24,
			RadiansPerSecond: math.Pi,
			Color:            Color(colornames.Indigo),
			Accent:           Color(colornames.Mediumpurple),
		},
		Pickup: MarkerSpec{Radius: 16, Color: Color(colornames.Gold)},
		Goal:   MarkerSpec{Radius: 28, Color: Color(colornames.Seagreen)},
		Sequence: SequenceSpec{
			DeathSeconds: 0.25,
			GoalSeconds:  0.25,
			ShrinkScale:  0.0001,
		},
		Gravity: GravitySpec{
			PointerDivisor: 100,
			TiltScale:      50,
			PixelsPerMeter: 150,
			SensorDelayMS:  16,
		},
		Layers: LayersSpec{Background: 0, Static: 10, Items: 20, Avatar: 30},
		HUD: HUDSpec{
			TextColor:  Color(colornames.White),
			PanelColor: Color(color.RGBA{R: 20, G: 20, B: 20, A: 220}),
			Padding:    12,
		},
	}
}

// LoadMazeSpec loads maze.yaml over DefaultMazeSpec, then repairs values no
// maze can be built with.
func LoadMazeSpec() (MazeSpec, error) {
	spec, err := LoadSpecOver(MazeFile, DefaultMazeSpec())
	if err != nil {
		return DefaultMazeSpec(), err
	}
	return spec.WithDefaults(), nil
}

// WithDefaults returns a copy with unusable values replaced by defaults:
// sizes, masses, divisors and durations must be positive, damping, friction
// and elasticity must not be negative. Zero friction, zero elasticity, no
// damping, no spin and a start at the origin are all kept. Render layers are
// taken as given.
func (s MazeSpec) WithDefaults() MazeSpec {
	d := DefaultMazeSpec()
	positive(&s.Scene.Width, d.Scene.Width)
	positive(&s.Scene.Height, d.Scene.Height)
	col(&s.Background, d.Background)

	positive(&s.Avatar.Radius, d.Avatar.Radius)
	positive(&s.Avatar.Mass, d.Avatar.Mass)
	nonNegative(&s.Avatar.LinearDamping, d.Avatar.LinearDamping)
	nonNegative(&s.Avatar.Friction, d.Avatar.Friction)
	nonNegative(&s.Avatar.Elasticity, d.Avatar.Elasticity)
	col(&s.Avatar.Color, d.Avatar.Color)

	positive(&s.Wall.Width, d.Wall.Width)
	positive(&s.Wall.Height, d.Wall.Height)
	nonNegative(&s.Wall.Friction, d.Wall.Friction)
	nonNegative(&s.Wall.Elasticity, d.Wall.Elasticity)
	col(&s.Wall.Color, d.Wall.Color)

	positive(&s.Hazard.Radius, d.Hazard.Radius)
	col(&s.Hazard.Color, d.Hazard.Color)
	col(&s.Hazard.Accent, d.Hazard.Accent)

	positive(&s.Pickup.Radius, d.Pickup.Radius)
	col(&s.Pickup.Color, d.Pickup.Color)
	positive(&s.Goal.Radius, d.Goal.Radius)
	col(&s.Goal.Color, d.Goal.Color)

	positive(&s.Sequence.DeathSeconds, d.Sequence.DeathSeconds)
	positive(&s.Sequence.GoalSeconds, d.Sequence.GoalSeconds)
	positive(&s.Sequence.ShrinkScale, d.Sequence.ShrinkScale)

	positive(&s.Gravity.PointerDivisor, d.Gravity.PointerDivisor)
	positive(&s.Gravity.PixelsPerMeter, d.Gravity.PixelsPerMeter)
	if s.Gravity.SensorDelayMS <= 0 {
		s.Gravity.SensorDelayMS = d.Gravity.SensorDelayMS
	}

	col(&s.HUD.TextColor, d.HUD.TextColor)
	col(&s.HUD.PanelColor, d.HUD.PanelColor)
	if s.HUD.Padding < 0 {
		s.HUD.Padding = d.HUD.Padding
	}
	return s
}

func positive(v *float64, def float64) {
	if *v <= 0 || math.IsNaN(*v) {
		*v = def
	}
}

func nonNegative(v *float64, def float64) {
	if *v < 0 || math.IsNaN(*v) {
		*v = def
	}
}

func col(v *ColorSpec, def ColorSpec) {
	if !v.IsSet() {
		*v = def
	}
}

// SecondsToFrames converts a duration to whole ticks at tps, at least one.
func SecondsToFrames(seconds float64, tps int) int {
	frames := int(math.Round(seconds * float64(tps)))
	if frames < 1 {
		return 1
	}
	return frames
}
