package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	auditRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "barakatna_audit_records_total",
		Help: "Total number of audit records ingested",
	})
	auditQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "barakatna_audit_queries_total",
		Help: "Total number of audit record queries evaluated",
	})
	auditExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barakatna_audit_exports_total",
		Help: "Total number of audit exports by format",
	}, []string{"format"})
	backupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barakatna_backups_total",
		Help: "Total number of backup operations by result",
	}, []string{"result"})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(auditRecordsTotal, auditQueriesTotal, auditExportsTotal, backupsTotal)
}

// IncAuditRecord increments the ingested records counter.
func IncAuditRecord() { auditRecordsTotal.Inc() }

// IncAuditQuery increments the evaluated queries counter.
func IncAuditQuery() { auditQueriesTotal.Inc() }

// IncAuditExport increments the exports counter for a format ("csv" or "json").
func IncAuditExport(format string) { auditExportsTotal.WithLabelValues(format).Inc() }

// IncBackup increments the backup counter for a result ("ok" or "error").
func IncBackup(result string) { backupsTotal.WithLabelValues(result).Inc() }
