// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"github.com/consensys/go-proptab/pkg/tables"
	"github.com/prometheus/client_golang/prometheus"
)

// conversionMetrics describes the shape of a single conversion.  A private
// registry is used so only these metrics end up in the textfile.
type conversionMetrics struct {
	registry      *prometheus.Registry
	tabElements   prometheus.Gauge
	blocksTotal   *prometheus.CounterVec
	blockElements *prometheus.GaugeVec
}

func newConversionMetrics() *conversionMetrics {
	m := &conversionMetrics{
		registry: prometheus.NewRegistry(),
		tabElements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proptab_tab_elements",
			Help: "Number of elements in the TAB vector.",
		}),
		blocksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proptab_blocks_total",
			Help: "Number of blocks appended to the TAB vector.",
		}, []string{"block"}),
		blockElements: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "proptab_block_elements",
			Help: "Number of elements in a block of the TAB vector.",
		}, []string{"block"}),
	}
	//
	m.registry.MustRegister(m.tabElements, m.blocksTotal, m.blockElements)
	//
	return m
}

// Observe records the layout of a linearised set of tables.
func (m *conversionMetrics) Observe(tabs *tables.Tables) {
	m.tabElements.Set(float64(len(tabs.Tab())))
	//
	for _, b := range tabs.Blocks() {
		m.blocksTotal.WithLabelValues(b.Name).Inc()
		m.blockElements.WithLabelValues(b.Name).Set(float64(b.Size))
	}
}

// WriteTextfile writes all metrics in the text exposition format, as read by
// the node exporter's textfile collector.
func (m *conversionMetrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}
