// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OneOf accepts exactly the given values.
func OneOf(valid ...string) FlagValidatorType {
	return func(value any) error {
		s, _ := value.(string)
		if !slices.Contains(valid, s) {
			return fmt.Errorf("must be one of %v", valid)
		}
		return nil
	}
}

// ArgsValidator checks the number of positional arguments.
func ArgsValidator(c *cli.Command, lo, hi int) error {
	n := c.NArg()
	switch {
	case n < lo:
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", c.Name, lo, n)
	case hi >= 0 && n > hi:
		return fmt.Errorf("%s: expected at most %d argument(s), got %d", c.Name, hi, n)
	}
	return nil
}
