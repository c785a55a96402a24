package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the decoded TOML input: a map of named models plus global
// fields that reset the built-in defaults for every model.
type Config struct {
	OutputDir string
	Models    map[string]ModelParameters

	// to reset global defaults
	Shape        string
	PointsFile   string
	LatticeParam float64 // lattice spacing [Å]
	Length       float64 // bounding edge / diameter [Å]
	QStart       float64 // [Å^-1]
	QEnd         float64 // [Å^-1]
	QStep        float64 // [Å^-1]
	Strategy     string
	Threads      int
	MakeDir      bool
}

// LoadConfig decodes configFileName+".toml". The metadata is needed
// later to distinguish absent fields from zero values.
func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, err
	}

	if len(config.Models) == 0 {
		return config, meta, fmt.Errorf("no models provided in %s.toml", configFileName)
	}
	return config, meta, nil
}

// ModelParameters describes one scattering computation: the atom set
// (a named lattice shape or a points file) and the q sweep over it.
type ModelParameters struct {
	Shape        string  // "cube" or "sphere"
	PointsFile   string  // x y z per line, alternative to Shape
	LatticeParam float64 // lattice spacing [Å]
	Length       float64 // bounding edge / diameter [Å]
	QStart       float64 // [Å^-1]
	QEnd         float64 // [Å^-1]
	QStep        float64 // [Å^-1]
	Strategy     string
	Threads      int
	MakeDir      bool
}

// CheckDefaults fills undefined model fields from the global section
// and the built-in defaults, and verifies the model names exactly one
// atom source. Field value priority: local, global, default.
func (mp *ModelParameters) CheckDefaults(modelName string, config *Config, meta *toml.MetaData) bool {
	local := func(field string) bool { return meta.IsDefined("Models", modelName, field) }

	if !local("Shape") && meta.IsDefined("Shape") {
		mp.Shape = config.Shape
	}
	if !local("PointsFile") && meta.IsDefined("PointsFile") {
		mp.PointsFile = config.PointsFile
	}
	if mp.PointsFile != "" && mp.Shape != "" {
		fmt.Printf("Model %s defines both PointsFile and Shape; pick one\n", modelName)
		return false
	}

	if !local("LatticeParam") && meta.IsDefined("LatticeParam") {
		mp.LatticeParam = config.LatticeParam
	}
	if !local("Length") && meta.IsDefined("Length") {
		mp.Length = config.Length
	}
	if mp.PointsFile == "" {
		if mp.Shape == "" || mp.LatticeParam <= 0 || mp.Length <= 0 {
			fmt.Printf("Model %s lacks key parameters (PointsFile, or Shape with positive LatticeParam and Length)\n", modelName)
			return false
		}
	}

	if !local("QStart") {
		if meta.IsDefined("QStart") {
			mp.QStart = config.QStart
		} else {
			mp.QStart = 1.
		}
	}
	if !local("QEnd") {
		if meta.IsDefined("QEnd") {
			mp.QEnd = config.QEnd
		} else {
			mp.QEnd = 15.
		}
	}
	if !local("QStep") {
		if meta.IsDefined("QStep") {
			mp.QStep = config.QStep
		} else {
			mp.QStep = 0.1
		}
	}
	if !local("Strategy") {
		if meta.IsDefined("Strategy") {
			mp.Strategy = config.Strategy
		} else {
			mp.Strategy = "matrix"
		}
	}
	if !local("Threads") && meta.IsDefined("Threads") {
		mp.Threads = config.Threads
	}
	if !local("MakeDir") && meta.IsDefined("MakeDir") {
		mp.MakeDir = config.MakeDir
	}
	return true
}
