// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-eero/internal/workers"
	"github.com/MKhiriev/go-eero/models"
	"github.com/urfave/cli/v2"
)

func (a *App) account(c *cli.Context) error {
	rt, err := a.session()
	if err != nil {
		return err
	}
	account, err := rt.Services.NetworkService.Account(c.Context)
	if err != nil {
		return err
	}
	return rt.Output.Write(account)
}

func (a *App) networks(c *cli.Context) error {
	rt, err := a.session()
	if err != nil {
		return err
	}
	networks, err := rt.Services.NetworkService.Networks(c.Context)
	if err != nil {
		return err
	}
	return rt.Output.Write(networks)
}

func (a *App) info(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		if raw := network.Raw(); raw != nil {
			return rt.Output.Write(raw)
		}
		return rt.Output.Write(network)
	})
}

func (a *App) details(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		details, err := rt.Services.NetworkService.NetworkDetails(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(details)
	})
}

func (a *App) devices(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		devices, err := rt.Services.NetworkService.Devices(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(devices)
	})
}

func (a *App) device(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: device needs NETWORK_ID and DEVICE_ID", ErrMissingArguments)
	}
	rt, err := a.session()
	if err != nil {
		return err
	}

	device, err := rt.Services.NetworkService.Device(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	return rt.Output.Write(device)
}

func (a *App) eeros(c *cli.Context) error {
	if c.Bool(flagVerbose) {
		return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
			eeros, err := rt.Services.NetworkService.Eeros(c.Context, network.URL)
			if err != nil {
				return err
			}
			return rt.Output.Write(eeros)
		})
	}

	rt, err := a.session()
	if err != nil {
		return err
	}
	summary, err := rt.Services.NetworkService.EeroSummary(c.Context)
	if err != nil {
		return err
	}
	return rt.Output.WriteReport(summary)
}

func (a *App) summary(c *cli.Context) error {
	rt, err := a.session()
	if err != nil {
		return err
	}
	summary, err := rt.Services.NetworkService.DeviceSummary(c.Context)
	if err != nil {
		return err
	}
	return rt.Output.WriteReport(summary)
}

func (a *App) reboot(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("%w: reboot needs an ID", ErrMissingArguments)
	}
	rt, err := a.session()
	if err != nil {
		return err
	}

	id := models.IDFromURL(c.Args().First())
	if c.Bool(flagNetwork) {
		if err = rt.Output.Println(fmt.Sprintf("Rebooting network: %s...", id)); err != nil {
			return err
		}
		_, err = rt.Services.NetworkService.RebootNetwork(c.Context, id)
		return err
	}

	if err = rt.Output.Println(fmt.Sprintf("Rebooting eero: %s...", id)); err != nil {
		return err
	}
	_, err = rt.Services.NetworkService.RebootEero(c.Context, id)
	return err
}

// speedtest runs one job per network. A failing network does not stop the
// others; all failures are returned together.
func (a *App) speedtest(c *cli.Context) error {
	rt, err := a.session()
	if err != nil {
		return err
	}
	networks, err := rt.Services.NetworkService.Networks(c.Context)
	if err != nil {
		return err
	}

	jobs := make([]workers.Worker, 0, len(networks))
	for _, network := range networks {
		jobs = append(jobs, &speedTestJob{
			runtime:  rt,
			network:  network,
			wait:     c.Bool(flagWait),
			interval: c.Duration(flagInterval),
			timeout:  c.Duration(flagTimeout),
		})
	}
	return workers.NewWorkers(jobs...).Run(c.Context)
}

func (a *App) speedtests(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		if c.Bool(flagLast) {
			latest, err := rt.Services.NetworkService.LatestSpeedTest(c.Context, network.URL)
			if err != nil {
				return err
			}
			return rt.Output.Write(models.SpeedTests{latest})
		}

		results, err := rt.Services.NetworkService.SpeedTests(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(results)
	})
}

func (a *App) diagnostics(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		diagnostics, err := rt.Services.NetworkService.Diagnostics(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(diagnostics)
	})
}

func (a *App) profiles(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		profiles, err := rt.Services.NetworkService.Profiles(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(profiles)
	})
}

func (a *App) forwards(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		forwards, err := rt.Services.NetworkService.Forwards(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(forwards)
	})
}

func (a *App) reservations(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		reservations, err := rt.Services.NetworkService.Reservations(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(reservations)
	})
}

func (a *App) resources(c *cli.Context) error {
	return a.forEachNetwork(c, func(rt *Runtime, network models.NetworkRef) error {
		resources, err := rt.Services.NetworkService.Resources(c.Context, network.URL)
		if err != nil {
			return err
		}
		return rt.Output.Write(resources)
	})
}
