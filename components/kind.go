package components

import (
	"fmt"
	"strings"
)

// Kind is one of the three cyclically dominant species.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// NumKinds is the number of kinds.
const NumKinds = 3

// Kinds lists every kind in display order.
var Kinds = [NumKinds]Kind{Rock, Paper, Scissors}

// preyOf[k] is the kind k hunts; predatorOf[k] is the kind that hunts k.
var (
	preyOf     = [NumKinds]Kind{Rock: Scissors, Paper: Rock, Scissors: Paper}
	predatorOf = [NumKinds]Kind{Rock: Paper, Paper: Scissors, Scissors: Rock}
)

var kindNames = [NumKinds]string{"rock", "paper", "scissors"}

// Valid reports whether k is one of the three kinds.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// Prey returns the kind that k converts on contact.
func (k Kind) Prey() Kind {
	return preyOf[k]
}

// Predator returns the kind that converts k on contact.
func (k Kind) Predator() Kind {
	return predatorOf[k]
}

// IsPreyOf reports whether an agent of kind k is converted by one of kind other.
// Rock is prey of paper, paper of scissors, scissors of rock.
func (k Kind) IsPreyOf(other Kind) bool {
	return predatorOf[k] == other
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Title returns the capitalized kind name for display.
func (k Kind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
