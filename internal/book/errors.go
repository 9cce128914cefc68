package book

import (
	"errors"

	"github.com/vkovtun/go-assistant/internal/config"
)

// Sentinel errors of the record model. Their message text is the user-visible
// contract: the command layer renders them verbatim, so they are phrased for
// the user, not for logs.
var (
	ErrEmptyName           = errors.New(config.ErrNameEmpty)
	ErrInvalidPhone        = errors.New(config.ErrPhoneFormat)
	ErrInvalidDate         = errors.New(config.ErrDateFormat)
	ErrPhoneNotFound       = errors.New(config.ErrPhoneNotFound)
	ErrPhoneToEditNotFound = errors.New(config.ErrPhoneEditNotFound)
	ErrNameNotFound        = errors.New(config.ErrContactNotFound)
)
