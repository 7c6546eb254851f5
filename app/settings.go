package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/storefront-admin/storefront-admin/internal/daemon"
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/filestore"
)

// Output formats of the list and get commands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrResetNotConfirmed is returned by reset without --yes.
	ErrResetNotConfirmed = errors.New("reset removes every stored setting, pass --yes to confirm")
	// ErrUnknownFormat is returned for output formats other than text, json and yaml.
	ErrUnknownFormat = errors.New("unknown output format")
)

var (
	outputFormat string
	resetConfirm bool

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change the stored store settings",
	}

	settingsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List every setting with its type, value and whether it is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(store *settings.Store) error {
				return listSettings(cmd.OutOrStdout(), store, outputFormat)
			})
		},
	}

	settingsGetCmd = &cobra.Command{
		Use:   "get KEY",
		Short: "Print the current value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *settings.Store) error {
				return getSetting(cmd.OutOrStdout(), store, args[0])
			})
		},
	}

	settingsSetCmd = &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting and save the whole record",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *settings.Store) error {
				return setSetting(cmd.OutOrStdout(), store, args[0], args[1])
			})
		},
	}

	settingsResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored setting so the defaults apply again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(store *settings.Store) error {
				return resetSettings(cmd.OutOrStdout(), store, resetConfirm)
			})
		},
	}

	settingsExportCmd = &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the current settings to a .toml, .yaml or .json file",
		Long: `Write the current settings to a .toml, .yaml or .json file.
Without FILE, a timestamped .toml file is written to the backup_dir setting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *settings.Store) error {
				var path string
				if len(args) > 0 {
					path = args[0]
				}

				return exportSettings(cmd.OutOrStdout(), store, path, time.Now())
			})
		},
	}

	settingsImportCmd = &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored settings with the ones of an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *settings.Store) error {
				return importSettings(cmd.OutOrStdout(), store, args[0])
			})
		},
	}
)

func init() { //nolint: gochecknoinits
	settingsListCmd.Flags().StringVarP(&outputFormat, "output", "o", FormatText, "output format: text, json or yaml")
	settingsResetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm the reset")

	settingsCmd.AddCommand(
		settingsListCmd,
		settingsGetCmd,
		settingsSetCmd,
		settingsResetCmd,
		settingsExportCmd,
		settingsImportCmd,
	)

	rootCmd.AddCommand(settingsCmd)
}

// withStore opens the configured settings store for the duration of fn.
func withStore(fn func(*settings.Store) error) error {
	store, closeStore, err := daemon.OpenStore(&cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("can't close settings store")
		}
	}()

	return fn(store)
}

// listedSetting is one row of the list command.
type listedSetting struct {
	Key     string `json:"key" yaml:"key"`
	Type    string `json:"type" yaml:"type"`
	Value   any    `json:"value" yaml:"value"`
	Default any    `json:"default" yaml:"default"`
	Stored  bool   `json:"stored" yaml:"stored"`
}

func listSettings(w io.Writer, store *settings.Store, format string) error {
	m := store.Load(settings.Default())
	fields := settings.Fields()
	rows := make([]listedSetting, 0, len(fields))

	stored, err := store.StoredKeys()
	if err != nil {
		return err
	}

	for _, f := range fields {
		v, _ := m.Value(f.Key)
		rows = append(rows, listedSetting{
			Key:     f.Key,
			Type:    f.Type.String(),
			Value:   v.Any(),
			Default: f.Default.Any(),
			Stored:  stored[f.Key],
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	case FormatYAML:
		out, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}

		_, err = w.Write(out)

		return err
	case FormatText, "":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "KEY\tTYPE\tVALUE\tSTORED")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", r.Key, r.Type, r.Value, strconv.FormatBool(r.Stored))
	}

	return tw.Flush()
}

func getSetting(w io.Writer, store *settings.Store, key string) error {
	v, ok := store.Load(settings.Default()).Value(key)
	if !ok {
		return fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
	}

	_, err := fmt.Fprintln(w, v.String())

	return err
}

// setSetting parses raw like a stored value, so "yes" is a true boolean and
// anything unparsable for a number is rejected instead of defaulted.
func setSetting(w io.Writer, store *settings.Store, key, raw string) error {
	field, ok := settings.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
	}

	v, err := settings.Parse(field.Type, raw)
	if err != nil {
		return err
	}

	m, err := store.Load(settings.Default()).With(key, v)
	if err != nil {
		return err
	}

	if err = m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	if err = store.Save(m); err != nil {
		return err
	}

	log.Info().Str("key", key).Str("value", v.String()).Msg("setting changed from the command line")

	_, err = fmt.Fprintf(w, "%s = %s\n", key, v.String())

	return err
}

func resetSettings(w io.Writer, store *settings.Store, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}

	if err := store.Clear(); err != nil {
		return err
	}

	log.Info().Msg("settings reset to defaults from the command line")

	_, err := fmt.Fprintln(w, "settings reset to defaults")

	return err
}

// exportPath returns path, or a timestamped file in dir when path is empty.
func exportPath(path, dir string, now time.Time) string {
	if path != "" {
		return path
	}

	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	return filepath.Join(dir, "storefront-settings-"+now.Format("20060102-150405")+".toml")
}

func exportSettings(w io.Writer, store *settings.Store, path string, now time.Time) error {
	m := store.Load(settings.Default())
	path = exportPath(path, m.BackupDir, now)

	// never merge into an older export
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("export file %s already exists", path)
	}

	backend, err := filestore.New(path)
	if err != nil {
		return err
	}

	if err = settings.NewStore(backend).Save(m); err != nil {
		return errors.Wrapf(err, "export settings to %s", path)
	}

	_, err = fmt.Fprintf(w, "settings exported to %s\n", path)

	return err
}

// importSettings loads path like any other backend, so missing or malformed
// keys fall back to their defaults, then saves the result.
func importSettings(w io.Writer, store *settings.Store, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "import settings")
	}

	backend, err := filestore.New(path)
	if err != nil {
		return err
	}

	m := settings.NewStore(backend).Load(settings.Default())
	if err = m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid settings in %s", path)
	}

	if err = store.Save(m); err != nil {
		return err
	}

	log.Info().Str("file", path).Msg("settings imported from the command line")

	_, err = fmt.Fprintf(w, "settings imported from %s\n", path)

	return err
}
