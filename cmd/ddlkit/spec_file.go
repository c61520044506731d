package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/function"
	"github.com/zqlz/ddlkit/internal/policy"
	"github.com/zqlz/ddlkit/internal/table"
	"github.com/zqlz/ddlkit/internal/trigger"
)

// SpecFile is the YAML envelope gen processes. Kind selects which
// section carries the spec; Dialect applies when the command has no
// --dialect override. Single-object commands also accept a bare spec
// document without the envelope.
type SpecFile struct {
	Kind     string          `yaml:"kind"`
	Dialect  dialect.Dialect `yaml:"dialect,omitempty"`
	Policy   *policy.Spec    `yaml:"policy,omitempty"`
	Trigger  *trigger.Spec   `yaml:"trigger,omitempty"`
	Function *function.Spec  `yaml:"function,omitempty"`
	Table    *table.Design   `yaml:"table,omitempty"`
}

// LoadSpecFile reads and decodes one spec envelope.
func LoadSpecFile(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	var f SpecFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: parse spec: %w", path, err)
	}
	return &f, nil
}

// Render synthesizes the CREATE statement for the envelope's object.
// The dialect argument wins over the file-level dialect; when both are
// empty the default is PostgreSQL.
func (f *SpecFile) Render(d dialect.Dialect) (string, error) {
	d = f.resolveDialect(d)

	switch f.Kind {
	case "policy":
		if f.Policy == nil {
			return "", fmt.Errorf("kind is policy but no policy section is present")
		}
		return policy.BuildCreate(*f.Policy, d)
	case "trigger":
		if f.Trigger == nil {
			return "", fmt.Errorf("kind is trigger but no trigger section is present")
		}
		return trigger.BuildCreate(*f.Trigger, d)
	case "function":
		if f.Function == nil {
			return "", fmt.Errorf("kind is function but no function section is present")
		}
		return function.BuildCreate(*f.Function, d)
	case "table":
		if f.Table == nil {
			return "", fmt.Errorf("kind is table but no table section is present")
		}
		design := *f.Table
		if design.Dialect == "" {
			design.Dialect = d
		}
		return table.BuildCreate(design)
	case "":
		return "", fmt.Errorf("spec file has no kind (expected policy, trigger, function, or table)")
	}
	return "", fmt.Errorf("unknown spec kind %q", f.Kind)
}

func (f *SpecFile) resolveDialect(override dialect.Dialect) dialect.Dialect {
	if override != "" {
		return override
	}
	if f.Dialect != "" {
		return f.Dialect
	}
	return dialect.Postgres
}

// loadInto decodes path as an envelope first and falls back to a bare
// document of the target type, so both layouts work for single-object
// commands. section extracts the typed pointer from the envelope.
func loadInto[T any](path string, section func(*SpecFile) *T) (T, dialect.Dialect, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, "", fmt.Errorf("read spec: %w", err)
	}

	var f SpecFile
	if err := yaml.Unmarshal(data, &f); err == nil {
		if s := section(&f); s != nil {
			return *s, f.Dialect, nil
		}
	}

	var bare T
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return zero, "", fmt.Errorf("%s: parse spec: %w", path, err)
	}
	return bare, f.Dialect, nil
}

func loadPolicySpec(path string) (policy.Spec, dialect.Dialect, error) {
	return loadInto(path, func(f *SpecFile) *policy.Spec { return f.Policy })
}

func loadTriggerSpec(path string) (trigger.Spec, dialect.Dialect, error) {
	return loadInto(path, func(f *SpecFile) *trigger.Spec { return f.Trigger })
}

func loadFunctionSpec(path string) (function.Spec, dialect.Dialect, error) {
	return loadInto(path, func(f *SpecFile) *function.Spec { return f.Function })
}

func loadTableDesign(path string) (table.Design, dialect.Dialect, error) {
	return loadInto(path, func(f *SpecFile) *table.Design { return f.Table })
}
