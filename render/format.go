package render

import "fmt"

//
// Format is an enum that represents the ways results can be written out.
//
type Format int

const (
	Table Format = iota
	CSV
	JSON
)

var formatNames = [...]string{"table", "csv", "json"}

func (o Format) String() string {
	if o < 0 || int(o) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(o))
	}

	return formatNames[o]
}

func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("unknown output format %q (expected table, csv or json)", s)
}
