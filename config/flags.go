package config

import "flag"

// Overrides are the command-line settings layered over the config file.
type Overrides struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Dev        bool
	Level      string
	Mute       bool
	Fullscreen bool
}

// RegisterFlags binds the overrides to a flag set.
func (o *Overrides) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to a YAML tuning file")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.LogFile, "log-file", "", "Also write logs to this rotated file")
	fs.BoolVar(&o.Dev, "dev", false, "Developer mode: hot-reload config, F1 collision overlay, FPS")
	fs.StringVar(&o.Level, "level", "", "Start directly in this level file, skipping the menu")
	fs.BoolVar(&o.Mute, "mute", false, "Disable audio")
	fs.BoolVar(&o.Fullscreen, "fullscreen", false, "Start fullscreen")
}

func (o Overrides) apply(s *Settings) {
	if o.Dev {
		s.Debug.Dev = true
	}
	if o.Level != "" {
		s.Debug.SkipMenu = true
	}
	if o.Mute {
		s.Audio.Muted = true
	}
}
