package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/reportcare/reportcare_backend/config"
	"github.com/reportcare/reportcare_backend/internal/classifier"
	"github.com/reportcare/reportcare_backend/internal/repo"
	"github.com/reportcare/reportcare_backend/internal/service/account"
	"github.com/reportcare/reportcare_backend/internal/service/analysis"
	svcfile "github.com/reportcare/reportcare_backend/internal/service/file"
	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
	"github.com/reportcare/reportcare_backend/internal/service/screening"
	"github.com/reportcare/reportcare_backend/internal/service/verify"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
	"github.com/reportcare/reportcare_backend/pkg/email"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
	s3pkg "github.com/reportcare/reportcare_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAccountService,
		ProvidePatientService,
		ProvideReportService,
		ProvideScreeningService,
		ProvideAnalysisService,
		ProvideVerifyService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideAccountService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	mail *email.Client,
	cfg *config.Config,
) account.Service {
	return account.New(db, rdb, paseto, authz, mail, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideReportService(db *repo.Client, s3 *s3pkg.Client) report.Service {
	return report.New(db, s3)
}

func ProvideScreeningService(
	clf *classifier.Classifier,
	patients patient.Service,
	reports report.Service,
	ledger analysis.Service,
	nc *nats.Conn,
) screening.Service {
	return screening.New(clf, patients, reports, ledger, nc)
}

func ProvideAnalysisService(db *repo.Client) analysis.Service {
	return analysis.New(db)
}

func ProvideVerifyService(db *repo.Client) verify.Service {
	return verify.New(db)
}

func ProvideFileService(s3 *s3pkg.Client, accounts account.Service) svcfile.Service {
	return svcfile.New(s3, accounts)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
