package types

import (
	"fmt"
	"strings"

	"github.com/datazip-inc/hivetap/utils"
)

// Partition describes how a table's rows are split across directories:
// the ordered partition field names. The on-disk convention is one
// "<name>=<value>" path segment per field.
type Partition struct {
	fields []string
}

func NewPartition(fields []string) *Partition {
	return &Partition{fields: utils.CopySlice(fields)}
}

func (p *Partition) Fields() []string {
	return utils.CopySlice(p.fields)
}

// Path renders the directory for one concrete partition, e.g.
// "dt=2024-01-01/country=se". Every partition field needs a value.
func (p *Partition) Path(values map[string]string) (string, error) {
	segments := make([]string, 0, len(p.fields))
	for _, field := range p.fields {
		value, found := values[field]
		if !found {
			return "", fmt.Errorf("%w: missing value for partition field [%s]", ErrInvalidConfig, field)
		}
		segments = append(segments, fmt.Sprintf("%s=%s", field, value))
	}
	return strings.Join(segments, "/"), nil
}
