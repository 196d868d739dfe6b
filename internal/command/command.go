package command

import (
	commandHandler "timetable/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewRosterHandler)

type Command struct {
	rosterCommandHandler *commandHandler.RosterHandler
}

// NewCommand .
func NewCommand(
	rosterCommandHandler *commandHandler.RosterHandler,
) *Command {
	return &Command{
		rosterCommandHandler: rosterCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "roster",
			Short: "列出目前發佈的群組名單",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.rosterCommandHandler.Print(cmd, args)
			},
		},
	)
}
