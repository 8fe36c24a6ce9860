package matl

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Encoder writes an environment's bindings in some output format.
type Encoder interface {
	Encode(w io.Writer, env *Environment) error
}

type TextEncoder struct{}

func (TextEncoder) Encode(w io.Writer, env *Environment) error {
	return Print(w, env)
}

// YAMLEncoder writes a sequence of bindings. The type is spelled out
// because YAML would otherwise print the real 5.0 as 5.
type YAMLEncoder struct{}

type yamlBinding struct {
	Name  string      `yaml:"name"`
	Type  string      `yaml:"type"`
	Value interface{} `yaml:"value"`
}

func (YAMLEncoder) Encode(w io.Writer, env *Environment) error {
	out := make([]yamlBinding, 0, env.Len())
	for _, b := range env.Bindings() {
		yb := yamlBinding{Name: b.Name, Type: b.Value.Kind.String()}
		if b.Value.IsInteger() {
			yb.Value = b.Value.Int
		} else {
			yb.Value = b.Value.Real
		}

		out = append(out, yb)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func EncoderFor(format string) (Encoder, error) {
	switch format {
	case "", "text":
		return TextEncoder{}, nil
	case "yaml":
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown output format '%s'", format)
	}
}
