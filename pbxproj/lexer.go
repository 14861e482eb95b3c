package pbxproj

import (
	"fmt"
	"strings"
)

type tokenKind int8

const (
	tokenWord tokenKind = iota
	tokenString
	tokenComment
	tokenPunct
)

// token is a byte range of the document. Punctuation tokens are one byte
// long: one of { } ( ) = ; ,
type token struct {
	kind  tokenKind
	start int
	end   int
}

func (t token) text(src string) string {
	return src[t.start:t.end]
}

func (t token) is(src string, punct byte) bool {
	return t.kind == tokenPunct && src[t.start] == punct
}

type lexer struct {
	src string
	pos int
	end int
}

func newLexer(src string, from, to int) *lexer {
	return &lexer{src: src, pos: from, end: to}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '=', ';', ',':
		return true
	}
	return false
}

// next returns the next token, ok=false at the end of input. Unterminated
// strings and block comments are errors.
func (l *lexer) next() (token, bool, error) {
	for l.pos < l.end && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= l.end {
		return token{}, false, nil
	}
	start := l.pos
	c := l.src[start]
	switch {
	case c == '/' && start+1 < l.end && l.src[start+1] == '*':
		idx := strings.Index(l.src[start+2:l.end], "*/")
		if idx < 0 {
			return token{}, false, fmt.Errorf("unterminated comment at offset %d", start)
		}
		l.pos = start + 2 + idx + 2
		return token{kind: tokenComment, start: start, end: l.pos}, true, nil
	case c == '/' && start+1 < l.end && l.src[start+1] == '/':
		idx := strings.IndexByte(l.src[start:l.end], '\n')
		if idx < 0 {
			l.pos = l.end
		} else {
			l.pos = start + idx
		}
		return token{kind: tokenComment, start: start, end: l.pos}, true, nil
	case c == '"':
		i := start + 1
		for i < l.end {
			switch l.src[i] {
			case '\\':
				i += 2
				continue
			case '"':
				l.pos = i + 1
				return token{kind: tokenString, start: start, end: l.pos}, true, nil
			}
			i++
		}
		return token{}, false, fmt.Errorf("unterminated string at offset %d", start)
	case isPunct(c):
		l.pos++
		return token{kind: tokenPunct, start: start, end: l.pos}, true, nil
	}
	i := start
	for i < l.end {
		ch := l.src[i]
		if isSpace(ch) || isPunct(ch) || ch == '"' {
			break
		}
		if ch == '/' && i+1 < l.end && (l.src[i+1] == '*' || l.src[i+1] == '/') {
			break
		}
		i++
	}
	l.pos = i
	return token{kind: tokenWord, start: start, end: i}, true, nil
}

// nextSignificant skips comments.
func (l *lexer) nextSignificant() (token, bool, error) {
	for {
		tok, ok, err := l.next()
		if err != nil || !ok {
			return tok, ok, err
		}
		if tok.kind != tokenComment {
			return tok, true, nil
		}
	}
}

// peekComment returns the comment immediately following the current
// position, if any, without consuming anything else.
func (l *lexer) peekComment() (token, bool) {
	saved := l.pos
	tok, ok, err := l.next()
	if err != nil || !ok || tok.kind != tokenComment {
		l.pos = saved
		return token{}, false
	}
	return tok, true
}

func closerFor(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ')'
}

// matchClose returns the offset of the delimiter closing the one at open.
// Braces and parentheses must nest properly.
func matchClose(src string, open, limit int) (int, error) {
	stack := []byte{closerFor(src[open])}
	l := newLexer(src, open+1, limit)
	for {
		tok, ok, err := l.nextSignificant()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("unbalanced %q at offset %d", src[open], open)
		}
		if tok.kind != tokenPunct {
			continue
		}
		switch c := src[tok.start]; c {
		case '{', '(':
			stack = append(stack, closerFor(c))
		case '}', ')':
			if stack[len(stack)-1] != c {
				return 0, fmt.Errorf("unexpected %q at offset %d", c, tok.start)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return tok.start, nil
			}
		}
	}
}

// commentText strips the comment delimiters and surrounding space.
func commentText(raw string) string {
	if strings.HasPrefix(raw, "/*") {
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	} else {
		raw = strings.TrimPrefix(raw, "//")
	}
	return strings.TrimSpace(raw)
}
