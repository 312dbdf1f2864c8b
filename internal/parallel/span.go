package parallel

// Span is a half-open range [Start, End) of linear pixel indices.
type Span struct {
	Start int
	End   int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split partitions [0, n) into consecutive spans of at most size indices.
// The spans are returned in ascending order and cover every index exactly
// once. A non-positive size yields a single span.
func Split(n, size int) []Span {
	if n <= 0 {
		return nil
	}
	if size <= 0 || size > n {
		size = n
	}

	spans := make([]Span, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
