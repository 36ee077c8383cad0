package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leandrodaf/pcspkr/internal/logger"
	"github.com/leandrodaf/pcspkr/sdk/beep"
	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

type step struct {
	name     contracts.PitchName
	octave   int
	duration float64
	rest     bool
}

var tune = []step{
	{name: contracts.A, octave: 4, duration: 500},
	{rest: true, duration: 250},
	{name: contracts.C, octave: 5, duration: 500},
	{name: contracts.E, octave: 5, duration: 250},
	{name: contracts.AFlat, octave: 4, duration: 750},
}

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewZapLogger()

	session, err := beep.Open(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		if errors.Is(err, contracts.ErrDeviceUnavailable) {
			fmt.Fprintln(os.Stderr, "Can't open PC speaker, do you have one?")
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Error("speaker left in unknown state", log.Field().Error("error", err))
		}
	}()

	if err := play(session, tune); err != nil {
		log.Error("tune aborted", log.Field().Error("error", err))
		return 1
	}
	return 0
}

func play(p contracts.Player, steps []step) error {
	for _, s := range steps {
		var err error
		if s.rest {
			err = p.Rest(s.duration)
		} else {
			err = p.PlayNamedNote(s.name, s.octave, s.duration)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
