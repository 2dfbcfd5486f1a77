package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	answerrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/answer"
	auditrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/audit"
	catalogrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/catalog"
	playlistrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/playlist"
	progressrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/progress"
	questionrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/question"
	topicrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
	authpkg "github.com/heartmarshall/interviewprep-backend/internal/auth"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/service/auth"
	"github.com/heartmarshall/interviewprep-backend/internal/service/catalog"
	"github.com/heartmarshall/interviewprep-backend/internal/service/compose"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
	"github.com/heartmarshall/interviewprep-backend/internal/service/playlist"
	"github.com/heartmarshall/interviewprep-backend/internal/service/progress"
	"github.com/heartmarshall/interviewprep-backend/internal/service/user"
)

// Services holds every service wired against one database.
type Services struct {
	Auth     *auth.Service
	Catalog  *catalog.Service
	Syncer   *catalog.Syncer
	Content  *content.Service
	Compose  *compose.Service
	User     *user.Service
	Playlist *playlist.Service
	Progress *progress.Service
}

// NewServices builds repositories on pool and the services on top of them.
// The server and the maintenance commands share this wiring.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	questions := questionrepo.New(pool)
	topics := topicrepo.New(pool)
	answers := answerrepo.New(pool)
	catalogs := catalogrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	contentSvc := content.NewService(logger, questions, topics, answers, catalogs, auditrepo.New(pool), txm, cfg.Content)

	return &Services{
		Auth:     auth.NewService(logger, users, jwtMgr, cfg.Auth),
		Catalog:  catalog.NewService(logger, catalogs, questions, answers),
		Syncer:   catalog.NewSyncer(logger, catalogs, txm),
		Content:  contentSvc,
		Compose:  compose.NewService(logger, llm.NewClient(logger, cfg.LLM), catalogs, contentSvc),
		User:     user.NewService(logger, users, users, txm),
		Playlist: playlist.NewService(logger, playlistrepo.New(pool), questions, txm),
		Progress: progress.NewService(logger, progressrepo.New(pool), questions),
	}
}
