package tabtex

import "iter"

// ConvertAll converts each input in order and yields the outcome of every
// [Session.Convert]. Alignments carry over between consecutive inputs with
// the same column count. A failed conversion does not end the sequence; stop
// ranging to stop converting.
func (s *Session) ConvertAll(inputs iter.Seq[string], d Dialect) iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		for raw := range inputs {
			if !yield(s.Convert(raw, d)) {
				return
			}
		}
	}
}

// ConvertChan converts inputs received from ch until it is closed.
// It is a thin wrapper around [Session.ConvertAll].
func (s *Session) ConvertChan(ch <-chan string, d Dialect) iter.Seq2[*Result, error] {
	return s.ConvertAll(chanToIter(ch), d)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
