package options

import (
	"fmt"
	"strings"
)

type Method int

const (
	// MethodNaive recomputes every window sum, matching the reference algorithm.
	MethodNaive Method = iota
	// MethodIntegral reads window sums from a per band summed-area table.
	MethodIntegral
)

const DefaultHalfFilterSize = 3

func (m Method) String() string {
	switch m {
	case MethodNaive:
		return "naive"
	case MethodIntegral:
		return "integral"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "naive", "":
		return MethodNaive, nil
	case "integral", "sat":
		return MethodIntegral, nil
	}
	return MethodNaive, fmt.Errorf("unknown filter method %q", s)
}

type FilterOptions struct {
	HalfFilterSize int

	// Workers > 1 splits the image into row strips filtered concurrently.
	// Only used by MethodNaive.
	Workers int
	Method  Method
}

// NewFilterOptions copies the caller's options over the defaults. nil gives the defaults.
func NewFilterOptions(options *FilterOptions) *FilterOptions {

	opt := &FilterOptions{
		HalfFilterSize: DefaultHalfFilterSize,
		Workers:        1,
		Method:         MethodNaive,
	}
	if options != nil {
		opt.HalfFilterSize = options.HalfFilterSize
		opt.Method = options.Method
		if options.Workers > 0 {
			opt.Workers = options.Workers
		}
	}
	return opt
}
