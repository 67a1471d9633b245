package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnexpectedChar           Code = 1001
	LexUnterminatedStringOrChar Code = 1002
	LexUnterminatedComment      Code = 1003
	LexInvalidNumber            Code = 1004
	LexEmptyCharLiteral         Code = 1005

	// Ввод-вывод
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnexpectedChar:           "Unexpected character",
	LexUnterminatedStringOrChar: "Unterminated string or character literal",
	LexUnterminatedComment:      "Unterminated block comment",
	LexInvalidNumber:            "Invalid number literal",
	LexEmptyCharLiteral:         "Empty character literal",
	IOLoadFileError:             "Failed to load source file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
