package commands

import (
	"fmt"

	app_info "github.com/rackops/fwctl/internal/app-info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func info() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s: %s\n\n", app_info.NAME, app_info.VERSION)
			fmt.Printf("config file:   %v\n", viper.Get("config-file"))
			fmt.Printf("log file:      %v\n", viper.Get("log-file"))
			fmt.Printf("database file: %v\n", viper.Get("database-file"))
		},
	}

	return cmd
}
