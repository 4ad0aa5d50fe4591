package common

import "github.com/prometheus/client_golang/prometheus"

const (
	ContractCallTotal          = "contract_call_total"
	ContractCallFailure        = "contract_call_failure"
	SettlementTotal            = "marketplace_settlement_total"
	ScheduledMessageTotal      = "scheduled_message_total"
	ContractCallDurationSecond = "contract_call_duration_seconds"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{}

	PromCounters = map[string]*prometheus.CounterVec{
		ContractCallTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ContractCallTotal,
			Help: "Count of all contract calls, nested calls included",
		}, []string{"contract", "function"}),
		ContractCallFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ContractCallFailure,
			Help: "Count of all rolled back operations",
		}, []string{"function", "code"}),
		SettlementTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SettlementTotal,
			Help: "Count of all marketplace state transitions",
		}, []string{"action"}),
		ScheduledMessageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ScheduledMessageTotal,
			Help: "Count of all scheduled messages by outcome",
		}, []string{"status"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		ContractCallDurationSecond: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: ContractCallDurationSecond,
			Help: "Duration of all top-level operations",
		}, []string{"function"}),
	}

	PromSummaries = map[string]*prometheus.SummaryVec{}
)
