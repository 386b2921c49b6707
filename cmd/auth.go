package cmd

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pikbatch/pikbatch/auth"
	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/icon"
	"github.com/pikbatch/pikbatch/style"
	"github.com/spf13/cobra"
)

// maskToken keeps only enough of a token to tell two apart.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 8) + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the drive access token",
	Long: `Manage the drive access token.

The token is read from the ` + auth.EnvToken + ` environment variable first,
then from the system keyring. Obtaining a token is up to you.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the access token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) > 0 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(
				&survey.Password{Message: "Access token"},
				&token,
				survey.WithValidator(survey.Required),
			))
		}

		token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
		if token == "" {
			handleErr(errors.New("access token is empty"))
		}

		handleErr(auth.SetToken(token))
		cmd.Printf("%s access token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an access token is available",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.Token(auth.Default())
		if errors.Is(err, auth.ErrMissingCredential) {
			cmd.Printf("%s no access token, run %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Bold("pikbatch auth set"))
			return
		}
		handleErr(err)

		cmd.Printf("%s access token %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Faint(maskToken(token)))
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the access token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		cmd.Printf("%s access token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
