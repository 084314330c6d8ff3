package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	EntriesInserted   *prometheus.CounterVec
	EntriesUpdated    *prometheus.CounterVec
	EntriesDeleted    *prometheus.CounterVec
	LedgerBalance     *prometheus.GaugeVec
	RecalcDuration    prometheus.Histogram
	PostingsGenerated *prometheus.CounterVec

	// Record metrics
	SalesRecorded       prometheus.Counter
	PurchasesRecorded   prometheus.Counter
	PayablesSettled     prometheus.Counter
	ReceivablesSettled  prometheus.Counter
	InstallmentsCreated prometheus.Counter

	// Store metrics
	StoreSaves     prometheus.Counter
	StoreConflicts prometheus.Counter
	StoreErrors    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesInserted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixa_entries_inserted_total",
				Help: "Total number of ledger entries inserted",
			},
			[]string{"ledger"},
		),
		EntriesUpdated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixa_entries_updated_total",
				Help: "Total number of ledger entries updated",
			},
			[]string{"ledger"},
		),
		EntriesDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixa_entries_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
			[]string{"ledger"},
		),
		LedgerBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "caixa_ledger_balance",
				Help: "Current running balance per ledger",
			},
			[]string{"ledger"},
		),
		RecalcDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caixa_recalculation_duration_seconds",
			Help:    "Duration of full-ledger balance recalculations",
			Buckets: prometheus.DefBuckets,
		}),
		PostingsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixa_postings_generated_total",
				Help: "Derived ledger postings by origin",
			},
			[]string{"origin"},
		),
		SalesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_sales_recorded_total",
			Help: "Total number of sales recorded",
		}),
		PurchasesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_purchases_recorded_total",
			Help: "Total number of purchases recorded",
		}),
		PayablesSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_payables_settled_total",
			Help: "Total number of payables marked paid",
		}),
		ReceivablesSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_receivables_settled_total",
			Help: "Total number of receivables marked received",
		}),
		InstallmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_installments_created_total",
			Help: "Total number of payable installments created",
		}),
		StoreSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_store_saves_total",
			Help: "Total number of document writes",
		}),
		StoreConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_store_conflicts_total",
			Help: "Total number of document version conflicts detected",
		}),
		StoreErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixa_store_errors_total",
			Help: "Total number of document read/write failures",
		}),
	}
}
