package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clarin-dspace/handle-resolver/cmd/app/commands"
	"github.com/clarin-dspace/handle-resolver/internal/app"
	"github.com/clarin-dspace/handle-resolver/internal/config"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withStorage runs fn against a started handle storage and tears the
// container down afterwards.
func withStorage(
	ctx context.Context,
	fn func(storage plugin.HandleStorage, container *app.Container) error,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	storage, err := container.HandleStorage()
	if err != nil {
		return err
	}
	if err := storage.Init(ctx, nil); err != nil {
		return err
	}
	return fn(storage, container)
}

func getHandleCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "resolve-handle",
			Usage: "Resolve a handle to its URL record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "handle",
					Aliases:  []string{"H"},
					Required: true,
					Usage:    "Handle to resolve (e.g., 11234/1-234)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(storage plugin.HandleStorage, container *app.Container) error {
					return commands.RunResolveHandle(
						ctx,
						storage,
						container.Logger(),
						cmd.String("handle"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "list-handles",
			Usage: "List every handle under a prefix",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "prefix",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Handle prefix (e.g., 11234)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(storage plugin.HandleStorage, container *app.Container) error {
					return commands.RunListHandles(
						ctx,
						storage,
						container.Logger(),
						cmd.String("prefix"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "check-authority",
			Usage: "Report whether this repository is authoritative for a naming authority",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "na",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Naming authority, either 0.NA/<prefix> or a bare prefix",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(storage plugin.HandleStorage, container *app.Container) error {
					return commands.RunCheckAuthority(
						ctx,
						storage,
						container.Logger(),
						cmd.String("na"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:  "handle-metadata",
			Usage: "Print the metadata fields of the object behind a handle",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "handle",
					Aliases:  []string{"H"},
					Required: true,
					Usage:    "Handle of the object",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(storage plugin.HandleStorage, container *app.Container) error {
					return commands.RunHandleMetadata(
						ctx,
						storage,
						container.Logger(),
						cmd.String("handle"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
	}
}
