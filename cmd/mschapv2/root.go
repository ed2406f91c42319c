package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/gomschap/pkg/dictionaries"
	"github.com/vitalvas/gomschap/pkg/dictionary"
	"github.com/vitalvas/gomschap/pkg/log"
)

type app struct {
	logLevel       string
	dictionaryPath string
	logger         *log.DefaultLogger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "mschapv2",
		Short:         "MS-CHAPv2 hashes, authenticator responses and RADIUS replies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.NewLoggerWithLevel(a.logLevel)
			a.logger.SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.dictionaryPath, "dictionary", "", "YAML or JSON dictionary file merged over the built-in attributes")

	cmd.AddCommand(
		a.newNTHashCommand(),
		a.newChallengeHashCommand(),
		a.newNTResponseCommand(),
		a.newAuthResponseCommand(),
		a.newReplyCommand(),
	)

	return cmd
}

// loadDictionary returns the built-in dictionary, extended with the file
// given by --dictionary.
func (a *app) loadDictionary(ctx context.Context) (*dictionary.Dictionary, error) {
	dict, err := dictionaries.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to build default dictionary: %w", err)
	}

	if a.dictionaryPath == "" {
		return dict, nil
	}

	source := &dictionary.FileSource{
		Path:   a.dictionaryPath,
		Base:   dict,
		Logger: a.logger,
	}

	dict, err = source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", a.dictionaryPath, err)
	}

	a.logger.WithField("file", a.dictionaryPath).Infof("loaded dictionary with %d vendors", len(dict.GetAllVendors()))
	return dict, nil
}

func decodeFixed(name, value string, out []byte) error {
	b, err := hex.DecodeString(value)
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", name, err)
	}
	if len(b) != len(out) {
		return fmt.Errorf("invalid --%s: need %d bytes, got %d", name, len(out), len(b))
	}
	copy(out, b)
	return nil
}
