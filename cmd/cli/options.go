package main

import (
	"os"
	"path/filepath"
)

const historyFileName = ".blockbits_history"

type Options struct {
	Bits        uint32
	HistoryFile string
	MaxHistory  int
	Logging     bool
}

var DefaultOptions = Options{
	Bits:       64,
	MaxHistory: 1000,
	Logging:    true,
}

type Option func(*Options)

func WithBits(n uint32) Option {
	return func(o *Options) {
		o.Bits = n
	}
}

func WithHistoryFile(path string) Option {
	return func(o *Options) {
		o.HistoryFile = path
	}
}

func WithMaxHistory(n int) Option {
	return func(o *Options) {
		o.MaxHistory = n
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.Logging = enabled
	}
}

// NewOptions applies opts over DefaultOptions. An unset history file falls
// back to one in the user's home directory, or the working directory if the
// home directory is unknown.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.HistoryFile == "" {
		o.HistoryFile = historyFileName
		if home, err := os.UserHomeDir(); err == nil {
			o.HistoryFile = filepath.Join(home, historyFileName)
		}
	}
	if o.MaxHistory <= 0 {
		o.MaxHistory = DefaultOptions.MaxHistory
	}
	return o
}
