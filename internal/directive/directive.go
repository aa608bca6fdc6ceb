// Package directive turns the single command-line token into a brightness
// adjustment and applies it to a device.
package directive

import (
	"strconv"

	"git.home.luguber.info/inful/xhacklight/internal/brightness"
)

// Kind tags the variant held by a Directive.
type Kind int

const (
	SetTo Kind = iota
	IncreaseBy
	DecreaseBy
	SmartIncrease
	SmartDecrease
)

var kindNames = map[Kind]string{
	SetTo:         "set",
	IncreaseBy:    "increase",
	DecreaseBy:    "decrease",
	SmartIncrease: "smart-increase",
	SmartDecrease: "smart-decrease",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Directive is one requested adjustment. Amount is only meaningful for
// SetTo, IncreaseBy and DecreaseBy.
type Directive struct {
	Kind   Kind
	Amount brightness.Level
}

// Set returns a SetTo directive.
func Set(v brightness.Level) Directive { return Directive{Kind: SetTo, Amount: v} }

// Increase returns an IncreaseBy directive.
func Increase(v brightness.Level) Directive { return Directive{Kind: IncreaseBy, Amount: v} }

// Decrease returns a DecreaseBy directive.
func Decrease(v brightness.Level) Directive { return Directive{Kind: DecreaseBy, Amount: v} }

// Smart returns the smart step directive for d.
func Smart(d brightness.Direction) Directive {
	if d == brightness.Up {
		return Directive{Kind: SmartIncrease}
	}
	return Directive{Kind: SmartDecrease}
}

// NeedsCurrent reports whether the target depends on the current brightness.
// Absolute sets never read the device.
func (d Directive) NeedsCurrent() bool {
	return d.Kind != SetTo
}

// Target computes the level to write given the current level. The result is
// not clamped to brightness.Max; the store does that on write.
func (d Directive) Target(current brightness.Level) brightness.Level {
	switch d.Kind {
	case SetTo:
		return d.Amount
	case IncreaseBy:
		return brightness.SaturatingAdd(current, d.Amount)
	case DecreaseBy:
		return brightness.SaturatingSub(current, d.Amount)
	case SmartIncrease:
		return brightness.Step(current, brightness.Up)
	case SmartDecrease:
		return brightness.Step(current, brightness.Down)
	default:
		return current
	}
}

func (d Directive) String() string {
	switch d.Kind {
	case SetTo, IncreaseBy, DecreaseBy:
		return d.Kind.String() + " " + strconv.FormatUint(uint64(d.Amount), 10)
	default:
		return d.Kind.String()
	}
}
