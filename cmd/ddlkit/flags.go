package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// dialectValue is a pflag.Value that parses and validates a dialect
// name at flag-parse time, so commands never see an unknown dialect.
type dialectValue struct {
	d *dialect.Dialect
}

var _ pflag.Value = (*dialectValue)(nil)

func newDialectValue(d *dialect.Dialect) *dialectValue {
	return &dialectValue{d: d}
}

func (v *dialectValue) String() string {
	if v.d == nil {
		return ""
	}
	return string(*v.d)
}

func (v *dialectValue) Set(s string) error {
	d, ok := dialect.Parse(s)
	if !ok {
		return fmt.Errorf("unknown dialect %q (supported: %s)", s, strings.Join(dialect.Names(), ", "))
	}
	*v.d = d
	return nil
}

func (v *dialectValue) Type() string {
	return "dialect"
}

// dialectFlag registers a --dialect flag on the command with the given
// default, returning the destination the parsed dialect lands in.
func dialectFlag(fs *pflag.FlagSet, def dialect.Dialect) *dialect.Dialect {
	d := def
	fs.VarP(newDialectValue(&d), "dialect", "D", "Target SQL dialect ("+strings.Join(dialect.Names(), ", ")+")")
	return &d
}
