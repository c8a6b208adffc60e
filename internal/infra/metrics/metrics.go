// Package metrics defines the Prometheus collectors of the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SMSProcessedTotal counts processed inbound SMS by command and outcome.
	SMSProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmgrid_sms_processed_total",
		Help: "Total number of inbound SMS commands processed.",
	}, []string{"command", "status"})

	// SMSSendFailuresTotal counts outbound SMS deliveries that failed.
	SMSSendFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmgrid_sms_send_failures_total",
		Help: "Total number of outbound SMS sends that failed.",
	})

	// OTPIssuedTotal counts issued verification codes.
	OTPIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmgrid_otp_issued_total",
		Help: "Total number of verification codes issued.",
	})

	// OTPVerifiedTotal counts verification attempts by outcome.
	OTPVerifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmgrid_otp_verified_total",
		Help: "Total number of verification attempts.",
	}, []string{"outcome"})
)
