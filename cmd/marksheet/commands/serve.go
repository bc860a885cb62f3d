package commands

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"

	api "github.com/marksheet-io/marksheet/internal/api/http"
	auth "github.com/marksheet-io/marksheet/internal/auth/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg()
		logger := log()
		ctx := cmd.Context()

		store, dbh, err := openStore(ctx, c)
		if err != nil {
			return err
		}
		defer dbh.Close()

		table, err := loadTable(c)
		if err != nil {
			return err
		}
		authSvc := auth.NewAuthService(c.AuthSecret, c.AdminUser, c.AdminPassHash)

		r := chi.NewRouter()
		r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   c.CORSOrigins,
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Post("/auth/login", auth.LoginHandler(authSvc))

		// Reads are open; writes need a token.
		r.Get("/records/*", api.GetRecordHandler(store))
		r.Get("/aggregates", api.AggregatesHandler(store, table))
		r.Get("/results/{system}", api.ResultHandler(store, table))
		r.Get("/systems", api.SystemsHandler())

		r.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))
			pr.Put("/records/*", api.PutRecordHandler(store))
			pr.Delete("/records/*", api.DeleteRecordHandler(store))
		})

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

		logger.Info().Str("addr", c.HTTPAddr).Str("db", c.DBDriver).Msg("listening")
		return http.ListenAndServe(c.HTTPAddr, r)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
