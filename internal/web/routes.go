package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Post(LoginRoute, Login(h))
	r.Get(LogoutRoute, Logout(h))

	r.Route("/feed", func(r chi.Router) {
		r.Get("/", GetFeed(h))
		r.Get("/status", FeedStatus(h))
	})

	r.Get("/notifications", GetNotifications(h))
	r.Get("/users/{name}", Profile(h))
	r.Get("/articles/search", SearchArticles(h))

	r.Group(func(r chi.Router) {
		r.Use(authenticated)

		r.Get("/me", Me(h))
		r.Put("/users/{id}", UpdateUser(h))

		r.Post("/notifications/{id}/open", OpenNotification(h))

		r.Post("/articles", CreateArticle(h))
		r.Put("/articles/{id}", UpdateArticle(h))
		r.Post("/articles/{id}/comments", AddComment(h))

		r.Post("/likes/{id}", Like(h))
		r.Post("/follow/{id}", Follow(h))
		r.Delete("/follow/{id}", Unfollow(h))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/statistics", Statistics(h))
		r.Get("/publications", AdminPublications(h))
		r.Patch("/publications/{id}/approve", ApproveArticle(h))
		r.Patch("/publications/{id}/reject", RejectArticle(h))
	})
}
