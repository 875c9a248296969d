package rgbmask

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks that every bound lies in [0, 255]. Out-of-domain values are
// rejected with ErrInvalidRange, never clamped.
func (c ThresholdConfig) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v not in [0, 255]", strings.TrimPrefix(fe.Namespace(), "ThresholdConfig."), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRange, strings.Join(msgs, ", "))
}

