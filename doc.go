/*
Package params provides reusable parameter types for command-line parsers:
range-bounded values, delimited lists, unions of alternatives, enumerations,
and validator-backed types.

Each type implements a single Convert contract which either returns a typed
value or a ValidationError carrying a user-facing message. Types are
constructed once when the CLI surface is defined and are immutable and
reentrant afterwards.

Example

Bounded port flag on a stdlib flag set:

		fs := flag.NewFlagSet("serve", flag.ContinueOnError)
		port := params.NewValue(
			params.IntRange(1, 65535),
			&params.Param{Name: "port"},
		)
		fs.Var(port, "port", "listen port")

		if err := fs.Parse([]string{"-port", "8080"}); err != nil {
			// the framework reports the message and exits non-zero
		}
		fmt.Println(port.Get()) // 8080

Composition

Range, list, and union types wrap other types, so a comma-delimited list of
bounded integers is:

		params.NewList("ports", params.IntRange(1, 65535), ",")

Validation failures are values of *ValidationError; any other error returned
from Convert indicates misuse of the library by the CLI author and is never
shown as a user input error.
*/
package params
