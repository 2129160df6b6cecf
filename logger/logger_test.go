package logger

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.DEBUG,
		" INFO ":  logging.INFO,
		"warn":    logging.WARNING,
		"warning": logging.WARNING,
		"error":   logging.ERROR,
		"notice":  logging.NOTICE,
		"":        logging.INFO,
		"bogus":   logging.INFO,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}
