package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/statepane/statepane/auth"
	"github.com/statepane/statepane/icon"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().BoolP("delete", "d", false, "Delete the stored token")
}

var authCmd = &cobra.Command{
	Use:   "auth [source]",
	Short: "Store a bearer token for a source",
	Long: `Store a bearer token for a source in the system keyring.
Sources that support it send the token with every request.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSources,
	Example:           "  statepane auth http",
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if lo.Must(cmd.Flags().GetBool("delete")) {
			handleErr(auth.DeleteToken(name))
			cmd.Printf("%s Token for %s deleted\n", icon.Get(icon.Success), name)
			return
		}

		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: fmt.Sprintf("Token for %s:", name),
		}, &token, survey.WithValidator(survey.Required)))

		handleErr(auth.SetToken(name, token))
		cmd.Printf("%s Token for %s saved\n", icon.Get(icon.Success), name)
	},
}
