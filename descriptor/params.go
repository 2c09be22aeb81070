package descriptor

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Params is a parameter type list. A nil Params means the element did not
// constrain parameters; an empty non-nil Params means "no parameters".
// It decodes from a sequence or from a comma separated scalar.
type Params []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	out := Params{}
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		out = append(out, list...)
	case yaml.ScalarNode:
		for _, part := range strings.Split(value.Value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	default:
		return fmt.Errorf("line %d: params must be a list or a string", value.Line)
	}
	*p = out
	return nil
}

// Strings returns p as a plain slice, preserving nil.
func (p Params) Strings() []string {
	if p == nil {
		return nil
	}
	return append([]string{}, p...)
}
