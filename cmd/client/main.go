// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-food-order/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd(buildInfo).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
