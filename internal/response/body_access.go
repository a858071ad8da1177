package response

// RawBody is reserved for a content-type aware body layer and always fails
// with [ErrBodyAccessUnsupported].
func (r *Response) RawBody() ([]byte, error) {
	return nil, ErrBodyAccessUnsupported
}

// ParsedBody always fails with [ErrBodyAccessUnsupported].
func (r *Response) ParsedBody() (any, error) {
	return nil, ErrBodyAccessUnsupported
}

// SetRawBody always fails with [ErrBodyAccessUnsupported].
func (r *Response) SetRawBody([]byte) error {
	return ErrBodyAccessUnsupported
}

// SetParsedBody always fails with [ErrBodyAccessUnsupported].
func (r *Response) SetParsedBody(any) error {
	return ErrBodyAccessUnsupported
}
