package sms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSynced    = "synced"
	outcomeDuplicate = "duplicate"
	outcomeIgnored   = "ignored"
	outcomeFailed    = "failed"
)

var (
	messagesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sms_messages_processed_total",
		Help: "SMS messages handled during sync, by outcome.",
	}, []string{"outcome"})

	syncBatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sms_sync_batches_total",
		Help: "Completed SMS sync batches.",
	})
)
