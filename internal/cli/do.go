package cli

//
// do.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"

	"gitlab.com/kabes/go-mygpo/mygpo"
)

func createInjector(ctx context.Context) do.Injector {
	injector := do.New()

	do.Provide(injector, newHTTPClientI)

	logger := log.Ctx(ctx)
	logger.Debug().Msgf("available services: %v", injector.ListProvidedServices())

	return injector
}

// newHTTPClientI build the http client shared by all server calls.
func newHTTPClientI(_ do.Injector) (*http.Client, error) {
	return mygpo.InstrumentHTTPClient(prometheus.DefaultRegisterer, "mygpo", nil), nil
}
