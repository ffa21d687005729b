package syntax

// lookahead is the number of significant tokens the stream can peek at.
const lookahead = 3

// stream is a cursor over the scanner's significant tokens.
//
// Comments are diverted into an out-of-band list as they are scanned, so
// the parser only ever sees grammar tokens. The stream buffers up to
// lookahead tokens; peek(0) is the current token.
type stream struct {
	scanner *Scanner

	buf [lookahead]Item
	n   int // number of buffered items

	keepComments bool
	comments     []*Comment
}

func newStream(sc *Scanner, keepComments bool) *stream {
	return &stream{scanner: sc, keepComments: keepComments}
}

// fill scans until at least k+1 significant tokens are buffered.
// Once EOF is buffered it is repeated.
func (s *stream) fill(k int) {
	for s.n <= k {
		if s.n > 0 && s.buf[s.n-1].Tok == _EOF {
			s.buf[s.n] = s.buf[s.n-1]
			s.n++
			continue
		}
		s.scanner.Next()
		it := s.scanner.Item()
		if it.Tok.IsComment() {
			if s.keepComments {
				s.comments = append(s.comments, &Comment{
					Text:  it.Lit,
					Block: it.Tok == _BlockComment,
					Span:  it.Span,
				})
			}
			continue
		}
		s.buf[s.n] = it
		s.n++
	}
}

// peek returns the k-th upcoming token without consuming anything.
// k must be less than lookahead.
func (s *stream) peek(k int) Item {
	s.fill(k)
	return s.buf[k]
}

// next consumes and returns the current token.
func (s *stream) next() Item {
	s.fill(0)
	it := s.buf[0]
	copy(s.buf[:], s.buf[1:s.n])
	s.n--
	return it
}
