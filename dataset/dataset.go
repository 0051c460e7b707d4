package dataset

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// ErrInvalidDataset is wrapped by every structural validation failure.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// Edge is one undirected, weighted road between two named nodes.
type Edge struct {
	From   string  `yaml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" json:"to" validate:"required,nefield=From"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// Dataset is the ordered set of node labels and (node, node, weight) triples
// used to populate a core.Graph.
type Dataset struct {
	Name  string   `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes []string `yaml:"nodes" json:"nodes" validate:"required,min=1,dive,required"`
	Edges []Edge   `yaml:"edges" json:"edges" validate:"omitempty,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the dataset's shape: at least one node, no empty labels,
// no self-loops and no negative weights. Referential checks (unknown or
// duplicate nodes) happen in Build.
//
// All violations are returned together, each wrapping ErrInvalidDataset.
func (d *Dataset) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	var merr *multierror.Error
	for _, fe := range fieldErrs {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s fails %q (value %v)",
			ErrInvalidDataset, fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return merr.ErrorOrNil()
}
