package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/studentgroups/docs"
	"github.com/fkhayef/studentgroups/internal/group"
	"github.com/fkhayef/studentgroups/internal/student"
	mw "github.com/fkhayef/studentgroups/pkg/middleware"
)

// newRouter wires the feature handlers onto a single store
func newRouter(groupRepo *group.Repository) chi.Router {
	// Group feature
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Student feature reads from the same store
	studentService := student.NewService(groupRepo)
	studentHandler := student.NewHandler(studentService)

	r := chi.NewRouter()

	r.Use(mw.CORS())
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/students", studentHandler.Routes())
	})

	return r
}
