// Package parser converts command strings into Command structs.
// Intentionally dumb: no NLP, just a fixed verb/preposition grammar.
package parser

import (
	"errors"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/teatime/types"
)

// ErrDidntUnderstand is returned for any input that doesn't fit the
// grammar. Parse failure never touches game state; the turn is simply
// replayed.
var ErrDidntUnderstand = errors.New("I didn't get that, come again?")

// Filler words dropped before classification.
var stopWords = newSet("a", "an", "the", "at", "to", "go", "of")

// The closed preposition set splitting the two object phrases.
var prepositions = newSet("in", "into", "for", "inside")

// Direction tokens double as implicit "go" verbs.
var directions = newSet("north", "n", "south", "s", "east", "e", "west", "w")

func newSet(words ...string) mapset.Set[string] {
	s := mapset.New[string]()
	for _, w := range words {
		s.Put(w)
	}
	return s
}

// tokenKind classifies a surviving input word.
type tokenKind int

const (
	tokenVerb tokenKind = iota
	tokenObject
	tokenPrep
	tokenDirection
)

type token struct {
	kind  tokenKind
	value string
}

// Parse converts a raw input line into a Command. Commands are either a
// bare direction, or a phrase of the form
//
//	<verb> [object words] [prep object words]
//
// Anything else fails with ErrDidntUnderstand.
func Parse(input string) (types.Command, error) {
	tokens := tokenize(clean(input))
	cmd, ok := assemble(tokens)
	if !ok {
		return types.Command{}, ErrDidntUnderstand
	}
	return cmd, nil
}

// clean splits on whitespace, lowercases, and drops stop words.
func clean(input string) []string {
	var words []string
	for _, w := range strings.Fields(input) {
		w = strings.ToLower(w)
		if !stopWords.Has(w) {
			words = append(words, w)
		}
	}
	return words
}

// tokenize classifies each word. The first word is a verb unless it is a
// direction token; every later word is a preposition, a direction, or an
// object word.
func tokenize(words []string) []token {
	if len(words) == 0 {
		return nil
	}

	var tokens []token
	if directions.Has(words[0]) {
		tokens = append(tokens, token{tokenDirection, words[0]})
	} else {
		tokens = append(tokens, token{tokenVerb, words[0]})
	}

	for _, w := range words[1:] {
		switch {
		case prepositions.Has(w):
			tokens = append(tokens, token{tokenPrep, w})
		case directions.Has(w):
			tokens = append(tokens, token{tokenDirection, w})
		default:
			tokens = append(tokens, token{tokenObject, w})
		}
	}
	return tokens
}

// assembleState tracks progress through the phrase grammar.
type assembleState int

const (
	afterVerb assembleState = iota // verb seen, no object yet
	inObject                       // building the primary object phrase
	afterPrep                      // preposition seen, target must follow
	inTarget                       // building the target object phrase
)

// assemble runs the deterministic state machine over the token stream.
// Consecutive object words space-join into a phrase, so multi-word names
// like "tea bag" survive as written.
func assemble(tokens []token) (types.Command, bool) {
	if len(tokens) == 0 {
		return types.Command{}, false
	}

	first := tokens[0]
	if first.kind != tokenVerb && first.kind != tokenDirection {
		return types.Command{}, false
	}
	cmd := types.Command{Verb: first.value}

	st := afterVerb
	for _, tok := range tokens[1:] {
		switch st {
		case afterVerb:
			if tok.kind != tokenObject {
				return types.Command{}, false
			}
			cmd.Object = tok.value
			st = inObject

		case inObject:
			switch tok.kind {
			case tokenObject:
				cmd.Object += " " + tok.value
			case tokenPrep:
				cmd.Prep = tok.value
				st = afterPrep
			default:
				return types.Command{}, false
			}

		case afterPrep:
			if tok.kind != tokenObject {
				return types.Command{}, false
			}
			cmd.Target = tok.value
			st = inTarget

		case inTarget:
			if tok.kind != tokenObject {
				return types.Command{}, false
			}
			cmd.Target += " " + tok.value
		}
	}

	// EOF in afterPrep means a dangling preposition.
	if st == afterPrep {
		return types.Command{}, false
	}
	return cmd, true
}
