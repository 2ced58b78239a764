package eval

import "fmt"

func unknownFunctionError(name string) error {
	return fmt.Errorf("unknown function %q (should have been rejected at parse time)", name)
}
