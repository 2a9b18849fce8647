// Package data holds the rig layout tables that are authored by hand rather
// than drawn: which sheet row holds which pose, and the per-frame head and arm
// offsets measured on the art.
package data

import (
	_ "embed"
	"fmt"

	"github.com/automoto/unexplored/rig"
	"gopkg.in/yaml.v3"
)

//go:embed rig.yaml
var rigYAML []byte

type RowSpec struct {
	Pose   string `yaml:"pose"`
	Row    int    `yaml:"row"`
	Frames int    `yaml:"frames"`
}

type SheetSpec struct {
	Path   string    `yaml:"path"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Rows   []RowSpec `yaml:"rows"`
}

type StripSpec struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
}

type LimbSpec struct {
	Sheet    *SheetSpec `yaml:"sheet"`
	Aim      string     `yaml:"aim"`
	AimImage string     `yaml:"aim_image"`
	Firing   *StripSpec `yaml:"firing"`
}

type RigSpec struct {
	WeaponReach float64                            `yaml:"weapon_reach"`
	Limbs       map[string]LimbSpec                `yaml:"limbs"`
	Weapon      string                             `yaml:"weapon"`
	Offsets     map[string]map[string][]rig.Offset `yaml:"offsets"`
}

// LoadRig parses the embedded rig layout.
func LoadRig() (*RigSpec, error) {
	return ParseRig(rigYAML)
}

func ParseRig(b []byte) (*RigSpec, error) {
	var spec RigSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("data: unmarshal rig: %w", err)
	}
	for i := rig.LimbID(0); i < rig.LimbCount; i++ {
		if _, ok := spec.Limbs[i.String()]; !ok {
			return nil, fmt.Errorf("data: rig has no %s limb: %w", i, rig.ErrAssetMissing)
		}
	}
	for name, l := range spec.Limbs {
		if _, ok := rig.ParseLimb(name); !ok {
			return nil, fmt.Errorf("data: unknown limb %q", name)
		}
		if l.Sheet == nil {
			continue
		}
		for _, r := range l.Sheet.Rows {
			if _, ok := rig.ParsePose(r.Pose); !ok {
				return nil, fmt.Errorf("data: %s sheet: unknown pose %q", name, r.Pose)
			}
			if r.Frames <= 0 {
				return nil, fmt.Errorf("data: %s sheet row %q has no frames", name, r.Pose)
			}
		}
	}
	return &spec, nil
}

// Limb returns the layout of one rig part.
func (s *RigSpec) Limb(id rig.LimbID) LimbSpec {
	return s.Limbs[id.String()]
}

// AimMode maps the aim keyword to the rig mode. An empty keyword never aims.
func (l LimbSpec) AimMode() (rig.AimMode, error) {
	switch l.Aim {
	case "", "none":
		return rig.AimNone, nil
	case "always":
		return rig.AimAlways, nil
	case "armed":
		return rig.AimWhenArmed, nil
	}
	return rig.AimNone, fmt.Errorf("data: unknown aim mode %q", l.Aim)
}

// OffsetTable converts a named offsets block into a dense table.
func (s *RigSpec) OffsetTable(name string) (*rig.OffsetTable, error) {
	rows, ok := s.Offsets[name]
	if !ok {
		return nil, fmt.Errorf("data: no %s offsets: %w", name, rig.ErrAssetMissing)
	}
	t := rig.NewOffsetTable()
	for key, offsets := range rows {
		pose, ok := rig.ParsePose(key)
		if !ok {
			return nil, fmt.Errorf("data: %s offsets: unknown pose %q", name, key)
		}
		t.Set(pose, offsets...)
	}
	return t, nil
}
