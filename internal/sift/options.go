package sift

import (
	"time"

	"github.com/jparise/datesift/internal/github"
	"github.com/jparise/datesift/internal/timeparse"
)

// Options contains the parsing parameters shared by every run.
type Options struct {
	Method timeparse.Method
	Param  timeparse.Param
	Jobs   int  // Maximum concurrent parses
	Fail   bool // Return ErrNoMatch when an input yields no date
}

// ScanOptions contains the parameters of a path scan.
type ScanOptions struct {
	Options

	Pattern    string
	Dir        string // Local root; ignored when Repo is set
	Repo       string // owner/repo[@ref]
	IgnoreCase bool
	FullPath   bool
	Within     time.Duration // Keep only dates newer than now minus Within (0 = no filter)
	ClientOpts github.ClientOptions
}
