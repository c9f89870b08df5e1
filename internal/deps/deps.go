package deps

import (
	"os/exec"
	"runtime"
)

type Dependency struct {
	Name       string
	Command    string
	Required   bool
	InstallCmd map[string]string
}

type MissingDep struct {
	Dependency
}

var dependencies = []Dependency{
	{
		Name:     "ImageMagick",
		Command:  "magick",
		Required: true,
		InstallCmd: map[string]string{
			"darwin": "brew install imagemagick",
			"linux":  "sudo apt install imagemagick",
		},
	},
}

// Check reports external tools the inline-image browser needs but cannot
// find. The text fallback runs without any of them.
func Check() []MissingDep {
	missing := []MissingDep{}
	for _, dep := range dependencies {
		if _, err := exec.LookPath(dep.Command); err != nil {
			missing = append(missing, MissingDep{dep})
		}
	}
	return missing
}

func InstallHint(dep MissingDep) string {
	goos := runtime.GOOS
	if cmd, ok := dep.InstallCmd[goos]; ok {
		return cmd
	}
	return "install " + dep.Name + " via your package manager"
}
