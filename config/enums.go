package config

import yaml "gopkg.in/yaml.v3"

// DuplicatePolicy selects how repeated registrations are handled. Repeats
// are always kept in the emitted list, warn only adds log noise.
// ENUM(allow, warn)
type DuplicatePolicy int

func (d DuplicatePolicy) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *DuplicatePolicy) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	v, err := ParseDuplicatePolicy(name)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
