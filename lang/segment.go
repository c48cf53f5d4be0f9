package lang

import "log/slog"

// segmenter states.
const (
	inText = iota
	inCall
)

// Segment scans text character by character and splits it into literal
// text nodes and macro call nodes. Every produced node records origin as
// its source document.
//
// A "{{" transition is only taken when a '{' arrives while the accumulated
// buffer already ends with '{'; a single brace is ordinary text. The same
// rule applies to "}}" inside a call. Whatever remains in the buffer at
// end of input is emitted as a final text node, even if empty, so an
// unterminated call body degrades to literal text.
func Segment(text, origin string) (Document, error) {
	var (
		doc   Document
		buf   []rune
		state = inText
	)

	for _, c := range text {
		switch state {
		case inText:
			if c == '{' && len(buf) > 0 && buf[len(buf)-1] == '{' {
				doc = append(doc, TextNode{
					Content: string(buf[:len(buf)-1]),
					Source:  origin,
				})
				buf = buf[:0]
				state = inCall
			} else {
				buf = append(buf, c)
			}

		case inCall:
			if c == '}' && len(buf) > 0 && buf[len(buf)-1] == '}' {
				function, arguments, err := parseCall(string(buf[:len(buf)-1]))
				if err != nil {
					return nil, WrapError(err).
						With(slog.String("origin", origin))
				}

				doc = append(doc, CallNode{
					Function:  function,
					Arguments: arguments,
					Source:    origin,
				})
				buf = buf[:0]
				state = inText
			} else {
				buf = append(buf, c)
			}
		}
	}

	doc = append(doc, TextNode{Content: string(buf), Source: origin})

	return doc, nil
}
