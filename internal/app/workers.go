package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/reportcare/reportcare_backend/config"
	"github.com/reportcare/reportcare_backend/internal/repo"
	"github.com/reportcare/reportcare_backend/internal/service/report"
	"github.com/reportcare/reportcare_backend/internal/service/screening"
	"github.com/reportcare/reportcare_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc   fx.Lifecycle
	Cfg  *config.Config
	NC   *nats.Conn
	DB   *repo.Client
	Mail *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startReportMailWorker(p.NC, p.DB, p.Mail, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// report_mail_worker
// ---------------------------------------------------------------------------

// startReportMailWorker emails the owning lab whenever a screening stores a
// new report. A failed send only logs; the report itself is already durable.
func startReportMailWorker(nc *nats.Conn, db *repo.Client, mail *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(screening.SubjectReportCreated+".*", func(msg *nats.Msg) {
		var ev screening.ReportCreatedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("report_mail_worker: bad event payload", "subject", msg.Subject, "err", err)
			return
		}

		ctx := context.Background()

		p, err := db.Patient.Get(ctx, ev.PatientID)
		if err != nil {
			slog.Warn("report_mail_worker: patient not found", "patient_id", ev.PatientID, "err", err)
			return
		}

		lab, err := db.Lab.Get(ctx, ev.LabID)
		if err != nil {
			slog.Warn("report_mail_worker: lab not found", "lab_id", ev.LabID, "err", err)
			return
		}

		publicID := report.PublicID(p.ID)
		m := email.BuildReportReadyEmail(email.ReportEmailData{
			LabName:     lab.Name,
			Email:       lab.Email,
			PatientName: p.Name,
			PublicID:    publicID,
			Result:      ev.Result,
			RiskPercent: ev.RiskScore,
			VerifyURL:   fmt.Sprintf("https://%s/api/v1/verify/%s", cfg.Server.Domain, publicID),
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("report_mail_worker: send failed", "report_id", ev.ReportID, "err", err)
			return
		}

		slog.Debug("report_mail_worker: notification sent", "report_id", ev.ReportID, "lab_id", ev.LabID)
	})
	if err != nil {
		slog.Error("report_mail_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("report_mail_worker: started")
}
