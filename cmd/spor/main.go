// Command spor attaches anchors to regions of text files and keeps them
// aligned with those regions as the files are edited.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point. It's kept separate from application so the CLI
// wiring can be exercised in tests without spawning a process.
func main() {
	app := application()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// application defines the spor command tree: init, add, list, update,
// status, diff, and details.
func application() *cli.App {
	return &cli.App{
		Name:  "spor",
		Usage: "Attach and relocate out-of-band metadata anchors in text files.",

		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Initialize a spor repository in the current directory.",
				ArgsUsage: " ",
				Action: func(c *cli.Context) error {
					return initCommand()
				},
			},
			{
				Name:      "add",
				Usage:     "Anchor a region of a file, reading anchor metadata as YAML on stdin.",
				ArgsUsage: "<source-file> <offset> <width> <context-width>",
				Action: func(c *cli.Context) error {
					return addCommand(c.Args().Slice(), os.Stdin)
				},
			},
			{
				Name:      "list",
				Usage:     "List the anchors stored in the repository dominating a path.",
				ArgsUsage: "[path]",
				Action: func(c *cli.Context) error {
					return listCommand(c.Args().First())
				},
			},
			{
				Name:  "update",
				Usage: "Relocate every stored anchor to match its file's current contents.",
				Action: func(c *cli.Context) error {
					return updateCommand()
				},
			},
			{
				Name:  "status",
				Usage: "Report which anchors are out of date relative to their files.",
				Action: func(c *cli.Context) error {
					return statusCommand()
				},
			},
			{
				Name:      "diff",
				Usage:     "Show how an anchor's context differs from the file's current contents.",
				ArgsUsage: "<anchor-id>",
				Action: func(c *cli.Context) error {
					return diffCommand(c.Args().First())
				},
			},
			{
				Name:      "details",
				Usage:     "Print the full stored record for an anchor.",
				ArgsUsage: "<anchor-id>",
				Action: func(c *cli.Context) error {
					return detailsCommand(c.Args().First())
				},
			},
		},
	}
}
