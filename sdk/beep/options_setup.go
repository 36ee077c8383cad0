package beep

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/leandrodaf/pcspkr/internal/logger"
	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// applyDefaultOptions sets default values for SessionOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify SessionOptions.
//
// Returns:
//   - contracts.SessionOptions: the finalized options with defaults applied.
//   - io.Closer: the logger built here, which the session must close; nil for a caller's logger.
//   - error: ErrInvalidFrequency if the base frequency is not a positive finite number.
func applyDefaultOptions(opts ...contracts.Option) (contracts.SessionOptions, io.Closer, error) {
	options := &contracts.SessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var owned io.Closer
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
		owned, _ = options.Logger.(io.Closer)
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.DevicePath == "" {
		options.DevicePath = contracts.DefaultDevicePath
	}
	if options.BaseFrequency == 0 {
		options.BaseFrequency = contracts.DefaultBaseFrequency
	}
	if options.Sleep == nil {
		options.Sleep = time.Sleep
	}
	if options.DeviceOpener == nil {
		options.DeviceOpener = defaultDeviceOpener
	}

	options.Logger.SetLevel(options.LogLevel)
	// A caller's logger keeps its own destination.
	if options.LogFilePath != "" {
		if owned != nil {
			options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
		} else {
			options.Logger.Warn("log file ignored for caller-supplied logger",
				options.Logger.Field().String("path", options.LogFilePath))
		}
	}

	if base := options.BaseFrequency; base < 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return *options, owned, fmt.Errorf("%w: base frequency %v", contracts.ErrInvalidFrequency, base)
	}
	return *options, owned, nil
}
