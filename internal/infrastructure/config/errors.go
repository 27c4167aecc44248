package config

import "fmt"

// ParseError reports a configuration file that could not be turned into
// Settings. The previous settings stay in effect.
type ParseError struct {
	Path string
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
