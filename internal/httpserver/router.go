package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/auth"
	"autohub/internal/cache"
	"autohub/internal/httpserver/handlers"
	"autohub/internal/metrics"
	"autohub/internal/notify"
)

// NewRouter wires the public catalog, auth, and the role-gated admin
// surface. Admin-level routes nest inside the staff group so the admin
// check runs before the staff check.
func NewRouter(db *gorm.DB, qc *cache.Cache, notifier notify.Notifier, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(metrics.Middleware)

	// Public catalog and content.
	r.Get("/v1/cars", handlers.ListCars(db, qc, lg))
	r.Get("/v1/cars/featured", handlers.FeaturedCars(db, lg))
	r.Get("/v1/cars/compare", handlers.CompareCars(db, lg))
	r.Get("/v1/cars/{slug}", handlers.GetCar(db, lg))
	r.Get("/v1/cars/{slug}/similar", handlers.SimilarCars(db, lg))
	r.Get("/v1/testimonials", handlers.ListTestimonials(db, lg))
	r.Get("/v1/blog", handlers.ListPosts(db, lg))
	r.Get("/v1/blog/{slug}", handlers.GetPost(db, lg))
	r.Get("/v1/settings", handlers.GetSettings(db, lg))
	r.Post("/v1/leads", handlers.CreateLead(db, notifier, lg))

	// Auth.
	r.Post("/v1/auth/register", handlers.Register(db, lg))
	r.Post("/v1/auth/login", handlers.Login(db, lg))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth(db))
		protected.Get("/v1/me", handlers.Me(db, lg))
		protected.Post("/v1/auth/logout", handlers.Logout(db))
		protected.Post("/v1/auth/password", handlers.ChangePassword(db, lg))

		protected.Route("/v1/admin", func(staff chi.Router) {
			staff.Use(auth.RequireStaff(db, lg))
			staff.Get("/dashboard", handlers.Dashboard(db, lg))

			staff.Get("/cars", handlers.AdminListCars(db, lg))
			staff.Post("/cars", handlers.CreateCar(db, lg))
			staff.Patch("/cars/{id}", handlers.UpdateCar(db, lg))
			staff.Delete("/cars/{id}", handlers.DeleteCar(db, lg))

			staff.Get("/leads", handlers.ListLeads(db, lg))
			staff.Patch("/leads/{id}", handlers.UpdateLead(db, lg))

			staff.Get("/testimonials", handlers.AdminListTestimonials(db, lg))
			staff.Post("/testimonials", handlers.CreateTestimonial(db, lg))
			staff.Patch("/testimonials/{id}", handlers.UpdateTestimonial(db, lg))
			staff.Delete("/testimonials/{id}", handlers.DeleteTestimonial(db, lg))

			staff.Get("/blog", handlers.AdminListPosts(db, lg))
			staff.Post("/blog", handlers.CreatePost(db, lg))
			staff.Patch("/blog/{id}", handlers.UpdatePost(db, lg))
			staff.Delete("/blog/{id}", handlers.DeletePost(db, lg))

			staff.Put("/settings", handlers.UpsertSettings(db, lg))

			staff.Group(func(admin chi.Router) {
				admin.Use(auth.RequireAdmin(db, lg))
				admin.Get("/users", handlers.ListUsers(db, lg))
				admin.Post("/users/{id}/roles/{role}", handlers.GrantRole(db, lg))
				admin.Delete("/users/{id}/roles/{role}", handlers.RevokeRole(db, lg))
			})
		})
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
