/*
Package config loads calculator settings from YAML or JSON and turns them into
parser options.

# Settings

All keys are optional. Unknown keys are errors.

	precision: 5        # decimal places of real results
	bits: 64            # precision of real arithmetic
	real: false         # convert exact results to reals
	log_level: info     # debug, info, warn, or error
	disable: [ln, log]  # names to remove from the registry
	constants:          # extra named constants
	  half: 0.5
	  third: 1/3
	  big: 123456789012345678901234567890

Constants are exact. Each is a decimal or a ratio "a/b" of decimals, read
from its literal text.

# Loading

	s, err := config.Load("calc.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	p := exactcalc.New(s.Options()...)
*/
package config
