package dataset

import "github.com/go-playground/validator/v10"

// validate is the package-level validator instance for interchange envelopes.
var validate = validator.New(validator.WithRequiredStructEnabled())
