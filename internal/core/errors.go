package core

import "errors"

var (
	ErrNoJobs           = errors.New("job list is empty")
	ErrDuplicateProcess = errors.New("duplicate process id")
	ErrNegativeArrival  = errors.New("arrival time must be non-negative")
	ErrNonPositiveBurst = errors.New("burst time must be positive")
	ErrMissingPriority  = errors.New("priority is required for priority scheduling")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrIncompleteRun    = errors.New("metrics requested before all processes completed")
)
