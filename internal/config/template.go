package config

import (
	"embed"
)

//go:embed transfuse.yaml.template
var templateFS embed.FS

// GetTemplate returns the embedded transfuse.yaml.template content
func GetTemplate() ([]byte, error) {
	return templateFS.ReadFile("transfuse.yaml.template")
}
