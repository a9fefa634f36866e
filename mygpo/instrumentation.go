package mygpo

//
// instrumentation.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentHTTPClient wrap base (http.DefaultTransport when nil) with
// request counting, duration and in-flight metrics registered on reg
// under the given client label. Pass the result to one of the NewCustom*
// constructors.
func InstrumentHTTPClient(reg prometheus.Registerer, name string, base http.RoundTripper) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}

	wreg := prometheus.WrapRegistererWith(prometheus.Labels{"client": name}, reg)

	inFlight := promauto.With(wreg).NewGauge(
		prometheus.GaugeOpts{
			Name: "http_client_in_flight_requests",
			Help: "Tracks the number of in-flight requests.",
		},
	)
	requestsTotal := promauto.With(wreg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"method", "code"},
	)
	requestDuration := promauto.With(wreg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "code"},
	)

	rt := promhttp.InstrumentRoundTripperInFlight(inFlight,
		promhttp.InstrumentRoundTripperCounter(requestsTotal,
			promhttp.InstrumentRoundTripperDuration(requestDuration, base)))

	return &http.Client{Transport: rt}
}
