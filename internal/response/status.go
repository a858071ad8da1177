package response

// Status returns the current response status code.
func (r *Response) Status() int {
	return r.transport.Status()
}

// SetStatus sets the response status code.
//
// It fails with [ErrValidation] if code is outside [100, 599] and with
// [ErrState] if the response has already been sent.
func (r *Response) SetStatus(code int) error {
	if err := validateStatus(code); err != nil {
		return err
	}
	if err := r.checkNotSent(); err != nil {
		return err
	}

	r.transport.WriteStatus(code)
	return nil
}
