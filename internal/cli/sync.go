package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/ariel-frischer/permsync/internal/config"
	"github.com/ariel-frischer/permsync/internal/errors"
	"github.com/ariel-frischer/permsync/internal/progress"
	"github.com/ariel-frischer/permsync/internal/registry"
	"github.com/ariel-frischer/permsync/internal/settings"
	"github.com/spf13/cobra"
)

// syncOptions captures the flag state for one consolidation run.
type syncOptions struct {
	showAllowCommands bool
	dryRun            bool
	noBackup          bool
}

// runSync executes the root command.
func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			"check ~/.permsync/config.json and PERMSYNC_* environment variables")
	}

	opts := syncOptions{
		showAllowCommands: flagShowAllow,
		dryRun:            flagDryRun,
		noBackup:          flagNoBackup,
	}
	return consolidate(cfg, opts, cmd.OutOrStdout())
}

// consolidate performs the full merge run: discover projects, load their
// local settings, fold them into the global settings, and persist the
// result. Audit lines and the summary go to out; progress goes to stderr.
func consolidate(cfg *config.Configuration, opts syncOptions, out io.Writer) error {
	reg, err := registry.Load(cfg.ClaudeConfigPath)
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			fmt.Sprintf("verify %s exists and is valid JSON", cfg.ClaudeConfigPath))
	}

	base, err := settings.Load(cfg.GlobalSettingsPath)
	if err != nil {
		return errors.Wrap(err, errors.Configuration,
			fmt.Sprintf("verify %s exists and is valid JSON", cfg.GlobalSettingsPath))
	}

	projects := reg.Projects()
	scanner := progress.NewScanner(cfg.ShowProgress, progress.DetectTerminalCapabilities())
	scanner.Start(fmt.Sprintf("Scanning %d project(s)", len(projects)))

	overrides, err := loadOverrides(projects, scanner)
	scanner.Stop()
	if err != nil {
		return err
	}

	merged, audit := settings.Merge(base, overrides, opts.showAllowCommands)

	for _, line := range audit {
		fmt.Fprintln(out, line)
	}

	if opts.dryRun {
		fmt.Fprintf(out, "Dry run: would merge settings from %d project(s) into %s\n",
			len(overrides), cfg.GlobalSettingsPath)
		return nil
	}

	if cfg.Backup && !opts.noBackup {
		if err := settings.Backup(cfg.GlobalSettingsPath); err != nil {
			return errors.Wrap(err, errors.Runtime,
				"the previous global settings could not be backed up; nothing was written")
		}
	}

	if err := settings.Save(cfg.GlobalSettingsPath, merged); err != nil {
		return errors.Wrap(err, errors.Runtime,
			fmt.Sprintf("check permissions on %s", filepath.Dir(cfg.GlobalSettingsPath)))
	}

	fmt.Fprintf(out, "%s Merged settings from %d project(s) into %s\n",
		scanner.Checkmark(), len(overrides), cfg.GlobalSettingsPath)
	return nil
}

// loadOverrides loads each project's local settings file in project order.
// A project without one contributes nothing and is skipped; a present but
// unparseable file is fatal so the user can repair it rather than have it
// silently dropped from the merge.
func loadOverrides(projects []string, scanner *progress.Scanner) ([]settings.Override, error) {
	var overrides []settings.Override
	for _, project := range projects {
		scanner.Update(fmt.Sprintf("Scanning %s", project))

		path := settings.LocalPath(project)
		doc, err := settings.Load(path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			scanner.Stop()
			return nil, errors.Wrap(err, errors.Configuration,
				fmt.Sprintf("fix or delete %s", path))
		}

		overrides = append(overrides, settings.Override{Source: project, Settings: doc})
	}
	return overrides, nil
}
