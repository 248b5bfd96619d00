package audio

import (
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

// DefaultProfile is used when an alarm references an unknown preset name.
const DefaultProfile = "Loud Beep"

type GainStep struct {
	At    float64 `yaml:"at"`
	Level float64 `yaml:"level"`
}

// Profile describes one preset tone: waveform, pulse envelope and how its
// frequency behaves. Climb is the urgency channel: Hz added per elapsed
// ringing second, on top of any in-pulse sweep.
type Profile struct {
	Name         string     `yaml:"name"`
	Wave         string     `yaml:"wave"`
	Frequency    float64    `yaml:"frequency"`
	Climb        float64    `yaml:"climb"`
	SweepTo      float64    `yaml:"sweep_to"`
	SweepSeconds float64    `yaml:"sweep_seconds"`
	Gain         []GainStep `yaml:"gain"`
}

// FrequencyAt returns the pulse start frequency after the urgency climb.
func (p *Profile) FrequencyAt(elapsedSeconds int) float64 {
	return p.Frequency + p.Climb*float64(elapsedSeconds)
}

type profilesFile struct {
	Profiles []Profile `yaml:"profiles"`
}

func loadProfiles() map[string]Profile {
	var file profilesFile
	if err := yaml.Unmarshal(profilesYAML, &file); err != nil {
		log.Fatal("parsing embedded sound profiles error: " + err.Error())
	}
	profiles := make(map[string]Profile, len(file.Profiles))
	for _, p := range file.Profiles {
		profiles[p.Name] = p
	}
	if _, ok := profiles[DefaultProfile]; !ok {
		log.Fatal("embedded sound profiles miss the default profile")
	}
	return profiles
}
