package directive

import (
	"strconv"
	"unicode/utf8"

	"git.home.luguber.info/inful/xhacklight/internal/brightness"
	"git.home.luguber.info/inful/xhacklight/internal/foundation/errors"
)

// UsageLine is printed on standard error for any malformed invocation.
const UsageLine = "Usage: xhacklight [=N|+N|-N|inc|dec]"

// Action is the outcome of parsing the command line: either a query of the
// current brightness or a directive to apply.
type Action struct {
	Query     bool
	Directive Directive
}

// Parse interprets the arguments after the program name.
//
//	(none)  query
//	inc     smart increase
//	dec     smart decrease
//	=N      set to N
//	+N      increase by N
//	-N      decrease by N
//
// Anything else is a usage error. A known mode with a non-numeric remainder
// is an argument error instead.
func Parse(args []string) (Action, error) {
	switch len(args) {
	case 0:
		return Action{Query: true}, nil
	case 1:
	default:
		return Action{}, usage()
	}

	token := args[0]
	switch token {
	case "inc":
		return Action{Directive: Smart(brightness.Up)}, nil
	case "dec":
		return Action{Directive: Smart(brightness.Down)}, nil
	case "":
		return Action{}, usage()
	}

	mode, size := utf8.DecodeRuneInString(token)
	var build func(brightness.Level) Directive
	switch mode {
	case '=':
		build = Set
	case '+':
		build = Increase
	case '-':
		build = Decrease
	default:
		return Action{}, usage()
	}

	n, err := strconv.ParseUint(token[size:], 10, 32)
	if err != nil {
		return Action{}, errors.ArgumentError(err, token).Build()
	}
	return Action{Directive: build(brightness.Level(n))}, nil
}

func usage() error {
	return errors.UsageError(UsageLine).Build()
}
