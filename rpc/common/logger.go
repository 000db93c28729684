package common

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide diagnostic logger. The level string
// is one of debug, info, warn, error. This logger is for diagnostics only;
// the audit trail of request/response exchanges goes to the JSON Lines log.
func InitLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}
