package lib

type charInfo struct {
	ch       rune
	location charLocation
}

func lex(expression string, emit func(token)) error {
	l := newLexer(expression, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(expression string, emit func(token)) *lexer {
	runes := []rune(expression)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emitCallback(token{tokType: tokenTypeLParen, location: chInfo.location})
	case ')':
		l.emitCallback(token{tokType: tokenTypeRParen, location: chInfo.location})
	case '+':
		l.emitCallback(token{tokType: tokenTypePlus, location: chInfo.location})
	case '-':
		l.emitCallback(token{tokType: tokenTypeMinus, location: chInfo.location})
	case '/':
		l.emitCallback(token{tokType: tokenTypeSlash, location: chInfo.location})
	case '*':
		l.emitCallback(token{tokType: tokenTypeAsterisk, location: chInfo.location})
	case ' ', '\t', '\r', '\n':
		// whitespace carries no meaning
	default:
		if isDigit(ch) || ch == '.' {
			return l.scanNumber(chInfo)
		}
		return false, invalidCharacter(ch, chInfo.location)
	}

	return true, nil
}

// scanNumber accumulates digits greedily from the first digit (or leading
// decimal point) until the next non-numeric character. At most one decimal
// point is allowed per number.
func (l *lexer) scanNumber(first charInfo) (bool, error) {
	hasDecimal := first.ch == '.'
	start := l.currentCharIndex - 1

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}
		if next.ch == '.' {
			if hasDecimal {
				return false, malformedAt("invalid number: multiple decimal points", next.location)
			}
			hasDecimal = true
		} else if !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	value := l.expr[start:l.currentCharIndex]
	l.emitCallback(token{tokType: tokenTypeNumber, value: value, location: first.location})
	return true, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
