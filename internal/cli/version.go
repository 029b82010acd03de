package cli

import "fmt"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("luhi_tools", Version)
	return nil
}
