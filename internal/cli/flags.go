package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of choices, so bad
// enum flags fail at parse time with the allowed values in the message.
type enumValue struct {
	value   *string
	choices []string
}

func newEnumValue(target *string, def string, choices ...string) pflag.Value {
	*target = def
	return &enumValue{value: target, choices: choices}
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Set(s string) error {
	for _, c := range e.choices {
		if s == c {
			*e.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.choices, "|"))
}

func (e *enumValue) Type() string { return "string" }
