// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-eero/internal/client"
	"github.com/MKhiriev/go-eero/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	code := app.Main(ctx, os.Args)

	stop()
	os.Exit(code)
}
