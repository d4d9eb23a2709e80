package motd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"leaguemotd/internal/application/motd/dto"
	"leaguemotd/internal/application/motd/usecases"
	"leaguemotd/internal/interfaces/cli/app"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewCommands returns the MOTD management commands.
func NewCommands(newApp app.Factory) []*cobra.Command {
	return []*cobra.Command{
		newListCommand(newApp),
		newAddCommand(newApp),
		newRemoveCommand(newApp),
		newEditCommand(newApp),
	}
}

func newListCommand(newApp app.Factory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list <lang>",
		Short: "List the MOTDs of a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.ListMOTDs.Execute(cmd.Context(), usecases.ListMOTDsQuery{Language: args[0]})
			if err != nil {
				return err
			}

			return writeList(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}

func newAddCommand(newApp app.Factory) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "add <lang> <message>",
		Short: "Add a MOTD to a language",
		Long:  `Add a MOTD. Words after the language are joined with spaces to form the message.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			err = a.AddMOTD.Execute(cmd.Context(), usecases.AddMOTDCommand{
				Language: args[0],
				Message:  strings.Join(args[1:], " "),
				URL:      url,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "MOTD added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "Link opened when the MOTD is clicked")

	return cmd
}

func newRemoveCommand(newApp app.Factory) *cobra.Command {
	var (
		index int
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "remove <lang>",
		Short: "Interactively remove a MOTD from a language",
		Long: `List the MOTDs of a language, ask which one to remove and delete it.
The MOTD is removed by content, so a concurrent change to the list never
removes a different message than the one shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			lang := args[0]
			selected, ok, err := selectMOTD(cmd, a, lang, index, yes, "Remove")
			if err != nil || !ok {
				return err
			}

			err = a.RemoveMOTD.Execute(cmd.Context(), usecases.RemoveMOTDCommand{
				Language: lang,
				Message:  selected.Message,
				URL:      selected.URL,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "MOTD removed")
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Position of the MOTD as shown by list (skips the prompt)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newEditCommand(newApp app.Factory) *cobra.Command {
	var (
		index   int
		message string
		url     string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "edit <lang>",
		Short: "Replace a MOTD of a language",
		Long:  `Replace a MOTD by removing the selected one and adding the new text. The two steps are not atomic.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			lang := args[0]
			selected, ok, err := selectMOTD(cmd, a, lang, index, yes, "Replace")
			if err != nil || !ok {
				return err
			}

			newURL := selected.URL
			if cmd.Flags().Changed("url") {
				newURL = nil
				if url != "" {
					newURL = &url
				}
			}

			err = a.ReplaceMOTD.Execute(cmd.Context(), usecases.ReplaceMOTDCommand{
				Language: lang,
				Old:      selected,
				New:      dto.MOTDDTO{Message: message, URL: newURL},
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "MOTD replaced")
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Position of the MOTD as shown by list (skips the prompt)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "New message")
	cmd.Flags().StringVarP(&url, "url", "u", "", "New link (default: keep the current one, empty removes it)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// selectMOTD lists lang and returns the entry picked by index or by prompt.
// ok is false when there is nothing to pick or the user declined.
func selectMOTD(cmd *cobra.Command, a *app.App, lang string, index int, yes bool, verb string) (dto.MOTDDTO, bool, error) {
	out := cmd.OutOrStdout()

	result, err := a.ListMOTDs.Execute(cmd.Context(), usecases.ListMOTDsQuery{Language: lang})
	if err != nil {
		return dto.MOTDDTO{}, false, err
	}
	if len(result.Items) == 0 {
		fmt.Fprintf(out, "No MOTDs for %s\n", lang)
		return dto.MOTDDTO{}, false, nil
	}

	writeText(out, result)

	var p *prompter
	if index == 0 || !yes {
		p, err = newPrompter(cmd.InOrStdin(), out)
		if err != nil {
			return dto.MOTDDTO{}, false, err
		}
	}

	if index == 0 {
		index, err = p.chooseIndex(len(result.Items))
	} else {
		index, err = checkIndex(index, len(result.Items))
	}
	if err != nil {
		return dto.MOTDDTO{}, false, err
	}

	selected := result.Items[index-1]
	if !yes {
		ok, err := p.confirm(fmt.Sprintf("%s %q?", verb, selected.Message))
		if err != nil {
			return dto.MOTDDTO{}, false, err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted")
			return dto.MOTDDTO{}, false, nil
		}
	}

	return selected, true, nil
}

func writeList(w io.Writer, format string, result *usecases.ListMOTDsResult) error {
	switch strings.ToLower(format) {
	case outputText, "":
		if len(result.Items) == 0 {
			fmt.Fprintf(w, "No MOTDs for %s\n", result.Language)
			return nil
		}
		writeText(w, result)
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeText(w io.Writer, result *usecases.ListMOTDsResult) {
	for i, item := range result.Items {
		fmt.Fprintf(w, "%3d) %s\n", i+1, item.Message)
		if item.URL != nil {
			fmt.Fprintf(w, "     %s\n", *item.URL)
		}
	}
}

// NewLanguagesCommand prints the configured allow-list. It does not need Redis.
func NewLanguagesCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the language codes MOTDs can be managed for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(opts)
			if err != nil {
				return err
			}
			for _, code := range usecases.NewLanguagePolicy(cfg.MOTD.Languages).Codes() {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}
