package config

import "sort"

// File is a parsed procfile: a named set of processes to spawn.
type File struct {
	Version   string              `yaml:"version"`
	Processes map[string]*Process `yaml:"processes"`
}

// Process describes one spawnable process. Capture marks a short-lived task
// whose output should be drained and reported; processes without it have
// their output discarded and are left running detached.
type Process struct {
	Command []string `yaml:"command"`
	Capture bool     `yaml:"capture"`
}

// Names returns process names sorted alphabetically so spawn order is
// deterministic.
func (f *File) Names() []string {
	out := make([]string, 0, len(f.Processes))
	for name := range f.Processes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
