package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/logger"
	"github.com/pcadley/satchel/internal/ops"
	"github.com/pcadley/satchel/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "satchel",
		Usage:   "Local browser site collection store",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db, cfg),
			removeCmd(db),
			moveCmd(db),
			listCmd(db),
			foldersCmd(db),
			recentsCmd(db, cfg),
			clearHistoryCmd(db),
			faviconCmd(db),
			importCmd(db),
			exportCmd(db, baseDir),
			snapshotCmd(db),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// siteFlags are the addressing/content flags shared by add.
func siteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Site URL (empty for folders)"},
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Page title"},
		&cli.StringFlag{Name: "custom-title", Usage: "User-chosen title (overrides the page title)"},
		&cli.StringFlag{Name: "tag", Usage: "Tag: bookmark|bookmark-folder|pinned"},
		&cli.IntFlag{Name: "folder-id", Usage: "Folder id (folders only; auto-assigned when omitted)"},
		&cli.IntFlag{Name: "parent", Value: -1, Usage: "Parent folder id (0 = top level)"},
		&cli.IntFlag{Name: "partition", Value: -1, Usage: "Browsing partition number"},
		&cli.StringFlag{Name: "favicon", Usage: "Favicon URL"},
	}
}

// siteInputFromFlags builds the shared SiteInput from CLI flags.
func siteInputFromFlags(c *cli.Context) ops.SiteInput {
	input := ops.SiteInput{
		Location: c.String("location"),
		Title:    c.String("title"),
		FolderID: c.Int("folder-id"),
		Favicon:  c.String("favicon"),
	}
	if c.IsSet("custom-title") {
		customTitle := c.String("custom-title")
		input.CustomTitle = &customTitle
	}
	if parent := c.Int("parent"); parent >= 0 {
		input.ParentFolderID = &parent
	}
	if partition := c.Int("partition"); partition >= 0 {
		input.PartitionNumber = &partition
	}
	if tag := c.String("tag"); tag != "" {
		input.Tags = []string{tag}
	}
	return input
}

// addCmd creates the add command.
func addCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a site record or update the existing one with the same identity",
		Flags: siteFlags(),
		Action: func(c *cli.Context) error {
			input := ops.AddSiteInput{
				Site: siteInputFromFlags(c),
				Tag:  c.String("tag"),
			}

			output, err := ops.AddSite(db, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// removeCmd creates the remove command.
func removeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Remove a site record (folders cascade to their descendants)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Site URL (non-folder records)"},
			&cli.IntFlag{Name: "folder-id", Usage: "Folder id (folder records)"},
			&cli.IntFlag{Name: "partition", Value: -1, Usage: "Browsing partition number"},
			&cli.StringFlag{Name: "tag", Usage: "Tag to strip: bookmark|bookmark-folder|pinned"},
		},
		Action: func(c *cli.Context) error {
			site := ops.SiteInput{
				Location: c.String("location"),
				FolderID: c.Int("folder-id"),
			}
			if partition := c.Int("partition"); partition >= 0 {
				site.PartitionNumber = &partition
			}
			if site.FolderID != 0 {
				site.Tags = []string{"bookmark-folder"}
			}

			output, err := ops.RemoveSite(db, ops.RemoveSiteInput{
				Site: site,
				Tag:  c.String("tag"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// moveCmd creates the move command.
func moveCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "move",
		Usage: "Move a site record relative to another",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Source URL (non-folder source)"},
			&cli.IntFlag{Name: "from-folder", Usage: "Source folder id (folder source)"},
			&cli.StringFlag{Name: "to", Usage: "Destination URL (non-folder destination)"},
			&cli.IntFlag{Name: "to-folder", Usage: "Destination folder id (folder destination)"},
			&cli.BoolFlag{Name: "prepend", Usage: "Insert before the destination instead of after"},
			&cli.BoolFlag{Name: "into", Usage: "Append as the destination folder's last child"},
			&cli.BoolFlag{Name: "no-reparent", Usage: "Keep the source's current parent folder"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.MoveSite(db, ops.MoveSiteInput{
				Source:              endpoint(c.String("from"), c.Int("from-folder")),
				Destination:         endpoint(c.String("to"), c.Int("to-folder")),
				Prepend:             c.Bool("prepend"),
				DestinationIsParent: c.Bool("into"),
				DisallowReparent:    c.Bool("no-reparent"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// endpoint builds the SiteInput addressing one end of a move.
func endpoint(location string, folderID int) ops.SiteInput {
	in := ops.SiteInput{Location: location, FolderID: folderID}
	if folderID != 0 {
		in.Tags = []string{"bookmark-folder"}
	}
	return in
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List site records in display order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Value: "all", Usage: "Filter: all|bookmarks|history"},
			&cli.IntFlag{Name: "folder", Usage: "Restrict to this folder's direct children"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.ListSites(db, ops.ListSitesInput{
				Filter:   c.String("filter"),
				FolderID: c.Int("folder"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// foldersCmd creates the folders command.
func foldersCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "folders",
		Usage: "List the bookmark folder tree with label paths",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "exclude", Usage: "Skip this folder and its subtree"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.FolderTree(db, ops.FolderTreeInput{
				ExcludeFolderID: c.Int("exclude"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// recentsCmd creates the recents command.
func recentsCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "recents",
		Usage: "List tagged records plus the most recently accessed history entries",
		Action: func(c *cli.Context) error {
			output, err := ops.Recents(db, cfg)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// clearHistoryCmd creates the clear-history command.
func clearHistoryCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "clear-history",
		Usage: "Delete all history entries and clear access times on bookmarks",
		Action: func(c *cli.Context) error {
			output, err := ops.ClearHistory(db)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// faviconCmd creates the favicon command.
func faviconCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "favicon",
		Usage: "Set the favicon on every record matching a location",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Required: true, Usage: "Site URL"},
			&cli.StringFlag{Name: "icon", Required: true, Usage: "Favicon URL"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.SetFavicon(db, ops.SetFaviconInput{
				Location: c.String("location"),
				Favicon:  c.String("icon"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// importCmd creates the import command.
func importCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import bookmarks from a YAML file",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("path argument is required"))
			}
			output, err := ops.Import(db, ops.ImportInput{Path: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export bookmarks as a markdown document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output path (defaults into the exports directory)"},
			&cli.BoolFlag{Name: "html", Usage: "Also render an HTML copy"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(db, ops.ExportInput{
				Path:    c.String("path"),
				BaseDir: baseDir,
				HTML:    c.Bool("html"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// snapshotCmd creates the snapshot command with its subcommands.
func snapshotCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Manage point-in-time copies of the site list",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Store a snapshot of the current site list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "label", Usage: "Snapshot label"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.SnapshotCreate(db, ops.SnapshotCreateInput{
						Label: c.String("label"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "list",
				Usage: "List stored snapshots, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: ops.DefaultSnapshotLimit, Usage: "Maximum snapshots to list"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.SnapshotList(db, ops.SnapshotListInput{
						Limit: c.Int("limit"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "restore",
				Usage:     "Replace the site list with a stored snapshot",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("snapshot id argument is required"))
					}
					output, err := ops.SnapshotRestore(db, ops.SnapshotRestoreInput{
						ID: c.Args().First(),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local HTTP JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (overrides config)"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Log level: debug|info|warn|error"},
			&cli.BoolFlag{Name: "pretty", Usage: "Human-readable log output"},
		},
		Action: func(c *cli.Context) error {
			serveCfg := *cfg
			if bind := c.String("bind"); bind != "" {
				serveCfg.WebBind = bind
			}
			if port := c.Int("port"); port != 0 {
				serveCfg.WebPort = port
			}

			log := logger.New(c.String("log-level"), c.Bool("pretty"))
			defer log.Sync()

			srv := web.NewServer(db, &serveCfg, log)
			return web.Run(srv, log)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SatchelError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
