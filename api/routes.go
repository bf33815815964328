package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes wires every resource route under /api, each one gated on
// the authorization predicate table before dispatch.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		// Credential issuance and identity
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/login_check", handlers.authHandler.login())
		r.With(authMiddleware.requireAuthenticated).Get("/auth/me", handlers.authHandler.me())

		// Own-account profile
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAuthenticated)
			r.Get("/profile", handlers.userHandler.getProfile())
			r.Put("/profile", handlers.userHandler.updateProfile())
		})

		// Account management
		r.With(requireAccess("users", OpCreate)).Post("/register", handlers.userHandler.register())
		r.Route("/users", func(r chi.Router) {
			r.With(requireAccess("users", OpList)).Get("/", handlers.userHandler.listUsers())
			r.With(requireAccess("users", OpRead)).Get("/{userID}", handlers.userHandler.getUser())
			r.With(requireAccess("users", OpUpdate)).Put("/{userID}", handlers.userHandler.updateUser())
			r.With(requireAccess("users", OpUpdate)).Patch("/{userID}", handlers.userHandler.updateUser())
			r.With(requireAccess("users", OpDelete)).Delete("/{userID}", handlers.userHandler.deleteUser())
		})

		// Projects, with relationship and view side-effect endpoints
		r.Route("/projects", func(r chi.Router) {
			r.With(requireAccess("projects", OpList)).Get("/", handlers.projectHandler.listProjects())
			r.With(requireAccess("projects", OpCreate)).Post("/", handlers.projectHandler.createProject())
			r.With(requireAccess("projects", OpStats)).Get("/stats", handlers.projectHandler.projectStats())
			r.With(requireAccess("projects", OpRead)).Get("/{projectID}", handlers.projectHandler.getProject())
			r.With(requireAccess("projects", OpUpdate)).Put("/{projectID}", handlers.projectHandler.updateProject())
			r.With(requireAccess("projects", OpUpdate)).Patch("/{projectID}", handlers.projectHandler.updateProject())
			r.With(requireAccess("projects", OpDelete)).Delete("/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/{projectID}/view", handlers.projectHandler.recordView())

			r.Group(func(r chi.Router) {
				r.Use(requireAccess("projects", OpUpdate))
				r.Post("/{projectID}/students/{studentID}", handlers.projectHandler.attachStudent())
				r.Delete("/{projectID}/students/{studentID}", handlers.projectHandler.detachStudent())
				r.Post("/{projectID}/technologies/{technologyID}", handlers.projectHandler.attachTechnology())
				r.Delete("/{projectID}/technologies/{technologyID}", handlers.projectHandler.detachTechnology())
			})
		})

		// Students
		r.Route("/students", func(r chi.Router) {
			r.With(requireAccess("students", OpList)).Get("/", handlers.studentHandler.listStudents())
			r.With(requireAccess("students", OpCreate)).Post("/", handlers.studentHandler.createStudent())
			r.With(requireAccess("students", OpRead)).Get("/{studentID}", handlers.studentHandler.getStudent())
			r.With(requireAccess("students", OpUpdate)).Put("/{studentID}", handlers.studentHandler.updateStudent())
			r.With(requireAccess("students", OpUpdate)).Patch("/{studentID}", handlers.studentHandler.updateStudent())
			r.With(requireAccess("students", OpDelete)).Delete("/{studentID}", handlers.studentHandler.deleteStudent())
		})

		// Technologies
		r.Route("/technologies", func(r chi.Router) {
			r.With(requireAccess("technologies", OpList)).Get("/", handlers.technologyHandler.listTechnologies())
			r.With(requireAccess("technologies", OpCreate)).Post("/", handlers.technologyHandler.createTechnology())
			r.With(requireAccess("technologies", OpList)).Get("/categories", handlers.technologyHandler.listCategories())
			r.With(requireAccess("technologies", OpRead)).Get("/{technologyID}", handlers.technologyHandler.getTechnology())
			r.With(requireAccess("technologies", OpUpdate)).Put("/{technologyID}", handlers.technologyHandler.updateTechnology())
			r.With(requireAccess("technologies", OpUpdate)).Patch("/{technologyID}", handlers.technologyHandler.updateTechnology())
			r.With(requireAccess("technologies", OpDelete)).Delete("/{technologyID}", handlers.technologyHandler.deleteTechnology())
		})

		// Contact requests: the admissions form is the one public write
		r.Post("/contact/admissions", handlers.contactHandler.submitContactRequest())
		r.Route("/contact-requests", func(r chi.Router) {
			r.With(requireAccess("contact-requests", OpList)).Get("/", handlers.contactHandler.listContactRequests())
			r.With(requireAccess("contact-requests", OpCreate)).Post("/", handlers.contactHandler.submitContactRequest())
			r.With(requireAccess("contact-requests", OpList)).Get("/stats", handlers.contactHandler.contactStats())
			r.With(requireAccess("contact-requests", OpRead)).Get("/{requestID}", handlers.contactHandler.getContactRequest())
			r.With(requireAccess("contact-requests", OpUpdate)).Put("/{requestID}", handlers.contactHandler.updateContactRequest())
			r.With(requireAccess("contact-requests", OpUpdate)).Patch("/{requestID}", handlers.contactHandler.updateContactRequest())
			r.With(requireAccess("contact-requests", OpDelete)).Delete("/{requestID}", handlers.contactHandler.deleteContactRequest())
		})
	})
}
