package lib

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeLParen
	tokenTypeRParen
	tokenTypePlus
	tokenTypeMinus
	tokenTypeSlash
	tokenTypeAsterisk
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	value    []rune
	location charLocation
}
