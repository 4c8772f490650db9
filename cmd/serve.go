package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/pkg/api/v1/apiv1connect"
	"droscher.com/WhiskyReview/pkg/auth"
	"droscher.com/WhiskyReview/pkg/repository"
	"droscher.com/WhiskyReview/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".WhiskyReview.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliContext *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	router := newRouter(conf, repo, logger)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(configureCORS(router, conf.Server.AllowedOrigins), &http2.Server{}),
	}

	logger.Info("starting server", zap.String("address", svr.Addr))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// newRouter wires the public catalog routes, the admin service behind the
// token interceptor, and health checks onto one router.
func newRouter(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(server.RequestLogger(logger))

	server.NewCatalogServer(repo, repo, conf.Catalog, logger).RegisterRoutes(router)

	authManager := auth.NewAuthManager(conf.Auth, repo, logger)
	interceptors := connect.WithInterceptors(authManager.AdminInterceptor())

	path, handler := apiv1connect.NewAdminServiceHandler(server.NewAdminServer(repo, repo, logger), interceptors)
	router.Handle(path+"*", handler)

	checker := server.NewHealthChecker(repo, logger, apiv1connect.AdminServiceName)
	path, handler = grpchealth.NewHandler(checker)
	router.Handle(path+"*", handler)
	router.Get("/healthz", checker.ServeHTTP)

	return router
}

func configureCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
