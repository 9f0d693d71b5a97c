// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	filtersRendered  *prometheus.CounterVec
	colorsUnresolved prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		filtersRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "duotone",
			Name:      "filters_rendered_total",
			Help:      "Number of rendered duotone filters",
		}, []string{"source"}),
		colorsUnresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "duotone",
			Name:      "colors_unresolved_total",
			Help:      "Number of duotone colors which could not be resolved",
		}),
	}
	reg.MustRegister(m.filtersRendered, m.colorsUnresolved)
	return m
}
