package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mleung/banknote/internal/bank"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the supported banks",
		Run: func(_ *cobra.Command, _ []string) {
			for _, b := range bank.Registered() {
				var types []string
				for _, cfg := range b.Configs {
					types = append(types, string(cfg.Type))
				}
				fmt.Printf("%-22s %s\n", b.Name, strings.Join(types, ", "))
			}
		},
	}
}
