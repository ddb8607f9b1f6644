package http

import "github.com/rs/zerolog"

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
