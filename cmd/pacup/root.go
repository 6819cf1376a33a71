package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NathanKolpa/pacup/internal/config"
	"github.com/NathanKolpa/pacup/internal/logging"
	"github.com/NathanKolpa/pacup/internal/manifest"
	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/pacman"
	"github.com/NathanKolpa/pacup/internal/prompt"
	"github.com/NathanKolpa/pacup/internal/sync"
)

// envManifestPath overrides the packagelist search path.
const envManifestPath = "PACUP_MANIFEST"

var (
	newSystem   = func() pacman.System { return pacman.RealSystem{} }
	newPrompter = func(out io.Writer) sync.Prompter { return prompt.NewHuhConfirmer(out) }
	newLocator  = manifest.DefaultLocator
)

type rootFlags struct {
	diff     bool
	manifest string
	config   string
	ask      bool
	verbose  bool
}

// manifestPath returns the --manifest value, falling back to PACUP_MANIFEST.
func (f *rootFlags) manifestPath() string {
	if f.manifest != "" {
		return f.manifest
	}
	return os.Getenv(envManifestPath)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, messages.RootFlagDiff)
	cmd.Flags().BoolVar(&flags.ask, "ask", false, messages.RootFlagAsk)
	cmd.PersistentFlags().StringVar(&flags.manifest, "manifest", "", messages.RootFlagManifest)
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(newDoctorCmd(flags), newVersionCmd())
	return cmd
}

func runSync(cmd *cobra.Command, flags *rootFlags) error {
	stderr := cmd.ErrOrStderr()
	logger := logging.New(stderr, flags.verbose)

	loaded, err := config.Load(config.DefaultPaths(flags.config))
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "source", loaded.Source)

	mgr, err := pacman.NewManager(loaded.Config.Pacman(), newSystem())
	if err != nil {
		return err
	}

	runner := &sync.Runner{
		Locator:  newLocator(),
		Manager:  mgr,
		Prompter: newPrompter(stderr),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   stderr,
		Logger:   logger,
	}
	err = runner.Run(sync.Options{
		ManifestPath: flags.manifestPath(),
		DryRun:       flags.diff,
		Ask:          flags.ask,
	})
	if errors.Is(err, sync.ErrDeclined) {
		return nil
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}
