package internal

import (
	"fmt"
	"strings"

	"github.com/xiaobogaga/bfc/util"
)

// The parser for bfc source.
//
// Grammar:
//   Program    := (Whitespace? Statement Whitespace?)*
//   Statement  := '>' | '<' | '+' | '-' | ',' | '.' | Loop | RawInsert
//   Loop       := '[' Program ']'
//   RawInsert  := '::' RawText '::'
//   Whitespace := (' ' | '\t' | '\n' | '\r')+ | '#' CommentText '#'
//
// RawText can not contain "::" and CommentText can not contain '#'; there is no escape for either.
//
// The recursion of parseProgram and parseLoop mirrors the loop nesting of the source, so a missing ']' is
// found by the same code that builds the tree. Nesting deeper than maxDepth is rejected.

// DefaultMaxDepth is the loop nesting depth Parse accepts.
const DefaultMaxDepth = 4096

const insertDelimiter = "::"

type Parser struct {
	Scanner
	maxDepth int
	depth    int
}

// Parse parses a whole document. Either every byte of source is consumed or a *SyntaxError is returned,
// never a partial program.
func Parse(source string) (Program, error) {
	return ParseWithDepth(source, DefaultMaxDepth)
}

// ParseWithDepth is Parse with an explicit loop nesting bound. A maxDepth below 1 means DefaultMaxDepth.
func ParseWithDepth(source string, maxDepth int) (Program, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	parser := &Parser{Scanner: Scanner{source: source}, maxDepth: maxDepth}
	program, err := parser.parseProgram()
	if err != nil {
		return nil, err
	}
	// parseProgram only stops early at a ']' which has no matching '['.
	if parser.hasRemainCharacters() {
		return nil, parser.makeError(parser.currentPos, false, "unmatched ']'")
	}
	return program, nil
}

// parseProgram parses statements until the end of input or a ']', which is left for the caller.
func (parser *Parser) parseProgram() (Program, error) {
	program := Program{}
	for {
		if err := parser.skipWhitespace(); err != nil {
			return nil, err
		}
		if !parser.hasRemainCharacters() || util.IsLoopClose(parser.current()) {
			return program, nil
		}
		stm, err := parser.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stm)
	}
}

func (parser *Parser) parseStatement() (Statement, error) {
	c := parser.current()
	switch c {
	case '>':
		parser.stepForward()
		return PointerMove{Offset: 1}, nil
	case '<':
		parser.stepForward()
		return PointerMove{Offset: -1}, nil
	case '+':
		parser.stepForward()
		return CellOp{Op: AddOpTP, Operand: 1}, nil
	case '-':
		parser.stepForward()
		return CellOp{Op: AddOpTP, Operand: -1}, nil
	case ',':
		parser.stepForward()
		return Input{}, nil
	case '.':
		parser.stepForward()
		return Output{}, nil
	case '[':
		return parser.parseLoop()
	case ':':
		return parser.parseRawInsert()
	}
	return nil, parser.makeError(parser.currentPos, false, fmt.Sprintf("unexpected character %q", c))
}

// [ Program ]
func (parser *Parser) parseLoop() (Statement, error) {
	start := parser.currentPos
	if parser.depth >= parser.maxDepth {
		return nil, parser.makeError(start, false, fmt.Sprintf("loops nested deeper than %d levels", parser.maxDepth))
	}
	parser.stepForward()
	parser.depth++
	body, err := parser.parseProgram()
	parser.depth--
	if err != nil {
		return nil, err
	}
	if !parser.hasRemainCharacters() {
		return nil, parser.makeError(start, true, "unterminated loop")
	}
	parser.stepForward()
	return Loop{Body: body}, nil
}

// :: RawText ::
func (parser *Parser) parseRawInsert() (Statement, error) {
	start := parser.currentPos
	if !parser.startsWith(insertDelimiter) {
		return nil, parser.makeError(start, false, "unexpected character ':'")
	}
	textStart := start + len(insertDelimiter)
	end := strings.Index(parser.source[textStart:], insertDelimiter)
	if end < 0 {
		return nil, parser.makeError(start, true, "unterminated raw insert")
	}
	text := parser.source[textStart : textStart+end]
	parser.currentPos = textStart + end + len(insertDelimiter)
	return RawInsert{Text: text}, nil
}
