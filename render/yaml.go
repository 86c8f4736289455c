package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, data any, cfg config) error {
	enc := yaml.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent(len(cfg.indent))
	}
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
