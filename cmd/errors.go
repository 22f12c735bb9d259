package cmd

import "errors"

// errNoProvider is returned when neither --provider nor --select is given
var errNoProvider = errors.New("Provider must be specified with --provider or -p")

// ArgumentError reports command line syntax the parser rejected
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return "failed to parse command line arguments: " + e.Err.Error() + " (see --help)"
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
