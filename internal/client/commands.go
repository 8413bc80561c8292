// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/urfave/cli/v2"
)

const (
	defaultLoginAttempts = 3

	flagIdentity   = "identity"
	flagAttempts   = "attempts"
	flagVerbose    = "verbose"
	flagNetwork    = "network"
	flagWait       = "wait"
	flagInterval   = "interval"
	flagTimeout    = "timeout"
	flagLast       = "last"
	flagAPIVersion = "api-version"
	flagParam      = "param"
)

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "login",
			Usage: "Login to the eero API",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagIdentity,
					Aliases: []string{"i"},
					Usage:   "email address or phone number (prompted when empty)",
				},
				&cli.IntFlag{
					Name:  flagAttempts,
					Value: defaultLoginAttempts,
					Usage: "how many verification codes to try",
				},
			},
			Action: a.login,
		},
		{
			Name:   "logout",
			Usage:  "End the session and forget the stored token",
			Action: a.logout,
		},
		{
			Name:   "refresh",
			Usage:  "Exchange the session token for a fresh one",
			Action: a.refresh,
		},
		{
			Name:   "account",
			Usage:  "Show your eero user account details",
			Action: a.account,
		},
		{
			Name:   "networks",
			Usage:  "Show available networks (generally one)",
			Action: a.networks,
		},
		{
			Name:   "info",
			Usage:  "Show the account's record of each network",
			Action: a.info,
		},
		{
			Name:   "details",
			Usage:  "Show your network configuration in detail",
			Action: a.details,
		},
		{
			Name:   "devices",
			Usage:  "Show all the devices connected to your networks",
			Action: a.devices,
		},
		{
			Name:      "device",
			Usage:     "Show the information for a specific device",
			ArgsUsage: "NETWORK_ID DEVICE_ID",
			Action:    a.device,
		},
		{
			Name:  "eeros",
			Usage: "Show all the eeros on your networks",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagVerbose,
					Usage: "print the full eero records",
				},
			},
			Action: a.eeros,
		},
		{
			Name:   "summary",
			Usage:  "Summary of the devices on your networks",
			Action: a.summary,
		},
		{
			Name:      "reboot",
			Usage:     "Reboot an eero, or a whole network with --network",
			ArgsUsage: "ID",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagNetwork,
					Usage: "treat ID as a network id and reboot every eero in it",
				},
			},
			Action: a.reboot,
		},
		{
			Name:  "speedtest",
			Usage: "Run a new network speed test",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagWait,
					Usage: "wait for the result and print it",
				},
				&cli.DurationFlag{
					Name:  flagInterval,
					Usage: "poll interval while waiting (default from config)",
				},
				&cli.DurationFlag{
					Name:  flagTimeout,
					Usage: "give up waiting after this long (default from config)",
				},
			},
			Action: a.speedtest,
		},
		{
			Name:  "speedtests",
			Usage: "Show your recent network speed test results",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagLast,
					Usage: "only the most recent result",
				},
			},
			Action: a.speedtests,
		},
		{
			Name:   "diagnostics",
			Usage:  "Show all network diagnostics",
			Action: a.diagnostics,
		},
		{
			Name:   "profiles",
			Usage:  "Show all network profiles",
			Action: a.profiles,
		},
		{
			Name:   "forwards",
			Usage:  "Show all network port forwarding rules",
			Action: a.forwards,
		},
		{
			Name:   "reservations",
			Usage:  "Show all network DHCP reservations",
			Action: a.reservations,
		},
		{
			Name:   "resources",
			Usage:  "Show your network resources",
			Action: a.resources,
		},
		{
			Name:      "raw",
			Usage:     "Send an arbitrary request and print the envelope data",
			ArgsUsage: "METHOD PATH",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagAPIVersion,
					Value: string(adapter.V22),
					Usage: "API version: 2.2, 2.3",
				},
				&cli.StringSliceFlag{
					Name:    flagParam,
					Aliases: []string{"p"},
					Usage:   "request parameter as KEY=VALUE (query for GET/DELETE, JSON body otherwise)",
				},
			},
			Action: a.raw,
		},
	}
}
