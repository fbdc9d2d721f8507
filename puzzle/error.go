package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board, its input, or the
// peer table.  It separates what failed (Scope, Attribute) from
// the predicate it failed (Condition), with supplemental Values,
// so callers can match on codes instead of message text.  It can
// also render an English message; the solve-time renderings are
// stable strings that external tools match on.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	InputScope
	TableScope
	CellScope
	BoardScope
	MaxScope
)

// The ErrorCondition is the predicate that the scope or attribute
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	ConflictCondition
	StalledCondition
	WrongLengthCondition
	NonDigitCondition
	PeerCountCondition
	UnorderedPeersCondition
	AsymmetryCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	IndexAttribute
	ValueAttribute
	LengthAttribute
	CharacterAttribute
	PeersAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate, such as the offending value, as well as the
// predicate itself, such as a required limit.  Every item must be
// JSON-serializable so errors can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}

	// The solve-time conditions render bare, with no scope prefix:
	// their text is part of the solver's published output.
	switch e.Condition {
	case ConflictCondition:
		if e.Scope == BoardScope {
			return fmt.Sprintf("cell at index %v is already fully constrained as %v",
				nextVal(), nextVal())
		}
		return fmt.Sprintf("cell is already fully constrained as %v", nextVal())
	case StalledCondition:
		return fmt.Sprintf("propagation stalled after applying %v of %v cells (total entropy %v)",
			nextVal(), nextVal(), nextVal())
	}

	var es string
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case InputScope:
		es = "Invalid puzzle input: "
	case TableScope:
		es = "Invalid peer table: "
	default:
		es = "Unknown error: "
	}
	switch e.Attribute {
	case IndexAttribute:
		es += "Index"
	case ValueAttribute:
		es += "Value"
	case LengthAttribute:
		es += "Length"
	case CharacterAttribute:
		es += "Character"
	case PeersAttribute:
		es += "Peer list"
	default:
		es += "<Unknown attribute>"
	}
	es += " (" + fmt.Sprint(nextVal()) + "): "
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case WrongLengthCondition:
		es += fmt.Sprintf("Must be exactly %v characters", nextVal())
	case NonDigitCondition:
		es += fmt.Sprintf("Must be a digit from 0 to 9 (at position %v)", nextVal())
	case PeerCountCondition:
		es += fmt.Sprintf("Must have exactly %v peers, has %v", nextVal(), nextVal())
	case UnorderedPeersCondition:
		es += fmt.Sprintf("Peer %v is out of ascending order", nextVal())
	case AsymmetryCondition:
		es += fmt.Sprintf("Peer %v does not list it back", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// cellConflictError reports an elimination that contradicts the
// value a cell is fixed to.  The cell doesn't know its own index;
// the board attaches it via conflictError.
func cellConflictError(value int) Error {
	return Error{
		Scope:     CellScope,
		Condition: ConflictCondition,
		Attribute: ValueAttribute,
		Values:    ErrorData{value},
	}
}

// conflictError is the board-level form of a conflict, naming the
// conflicting cell's index and its fixed value.
func conflictError(index, value int) Error {
	return Error{
		Scope:     BoardScope,
		Condition: ConflictCondition,
		Attribute: IndexAttribute,
		Values:    ErrorData{index, value},
	}
}

// stalledError reports a propagation pass that found no new
// determined cells to apply before the board was complete.
func stalledError(applied, entropy int) Error {
	return Error{
		Scope:     BoardScope,
		Condition: StalledCondition,
		Values:    ErrorData{applied, GridSize, entropy},
	}
}

func inputLengthError(length int) Error {
	return Error{
		Scope:     InputScope,
		Condition: WrongLengthCondition,
		Attribute: LengthAttribute,
		Values:    ErrorData{length, GridSize},
	}
}

func inputCharError(char rune, position int) Error {
	return Error{
		Scope:     InputScope,
		Condition: NonDigitCondition,
		Attribute: CharacterAttribute,
		Values:    ErrorData{string(char), position},
	}
}

func peerCountError(index, count int) Error {
	return Error{
		Scope:     TableScope,
		Condition: PeerCountCondition,
		Attribute: PeersAttribute,
		Values:    ErrorData{index, PeerCount, count},
	}
}

func tableOrderError(index, peer int) Error {
	return Error{
		Scope:     TableScope,
		Condition: UnorderedPeersCondition,
		Attribute: PeersAttribute,
		Values:    ErrorData{index, peer},
	}
}

func asymmetryError(index, peer int) Error {
	return Error{
		Scope:     TableScope,
		Condition: AsymmetryCondition,
		Attribute: IndexAttribute,
		Values:    ErrorData{index, peer},
	}
}
