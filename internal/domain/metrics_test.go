package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatedMetrics_ComputeDerivedMetrics(t *testing.T) {
	tests := []struct {
		name    string
		metrics AggregatedMetrics
		ctr     float64
		cpc     float64
		cpm     float64
		roas    float64
		cpa     float64
	}{
		{
			name: "contadores normais geram índices corretos",
			metrics: AggregatedMetrics{
				Impressions: 10000,
				Clicks:      250,
				Spend:       500,
				Revenue:     2000,
				Sales:       10,
			},
			ctr:  2.5,
			cpc:  2,
			cpm:  50,
			roas: 4,
			cpa:  50,
		},
		{
			name: "impressões zero resulta em CTR e CPM zero",
			metrics: AggregatedMetrics{
				Impressions: 0,
				Clicks:      0,
				Spend:       100,
				Revenue:     50,
				Sales:       2,
			},
			ctr:  0,
			cpc:  0,
			cpm:  0,
			roas: 0.5,
			cpa:  50,
		},
		{
			name: "cliques zero resulta em CPC zero",
			metrics: AggregatedMetrics{
				Impressions: 1000,
				Clicks:      0,
				Spend:       100,
			},
			ctr:  0,
			cpc:  0,
			cpm:  100,
			roas: 0,
			cpa:  0,
		},
		{
			name:    "todos os contadores zerados não geram NaN",
			metrics: AggregatedMetrics{},
			ctr:     0,
			cpc:     0,
			cpm:     0,
			roas:    0,
			cpa:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metrics.ComputeDerivedMetrics()

			assert.Equal(t, tt.ctr, tt.metrics.CTR)
			assert.Equal(t, tt.cpc, tt.metrics.CPC)
			assert.Equal(t, tt.cpm, tt.metrics.CPM)
			assert.Equal(t, tt.roas, tt.metrics.ROAS)
			assert.Equal(t, tt.cpa, tt.metrics.CPA)
		})
	}
}

func TestAggregatedMetrics_ComputeDerivedMetricsSobrescreveValoresAntigos(t *testing.T) {
	metrics := AggregatedMetrics{
		Impressions: 0,
		Clicks:      0,
		// Valores obsoletos que não correspondem mais aos contadores
		CTR: 99,
		CPC: 99,
		CPM: 99,
	}

	metrics.ComputeDerivedMetrics()

	assert.Zero(t, metrics.CTR)
	assert.Zero(t, metrics.CPC)
	assert.Zero(t, metrics.CPM)
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod(Period7d))
	assert.True(t, IsValidPeriod(Period30d))
	assert.True(t, IsValidPeriod(PeriodToday))
	assert.False(t, IsValidPeriod("90d"))
	assert.False(t, IsValidPeriod(""))
}
