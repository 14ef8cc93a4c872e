package agreement

import "github.com/go-playground/validator/v10"

// validate is the package-level validator instance for parameter contracts.
var validate = validator.New(validator.WithRequiredStructEnabled())
