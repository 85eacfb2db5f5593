package cmd

import (
	"errors"

	"github.com/olimci/mlseed/pkg/venv"
)

// Describe names the kind of failure: an external setup command, or anything
// else.
func Describe(err error) string {
	var cmdErr *venv.CommandError
	if errors.As(err, &cmdErr) {
		return "error during setup"
	}
	return "unexpected error"
}
