package json

const (
	leftBrace    = '{'
	rightBrace   = '}'
	leftBracket  = '['
	rightBracket = ']'

	comma = ','
	colon = ':'
	quote = '"'
)

const null = `null`
