package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/usecase"
	"media-review/pkg/middleware"
	"media-review/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewRoutes mounts reviews and their comments under the titles subtree.
// Reads are public; writes need a token, with author and role checks applied
// in the service layer.
func ReviewRoutes(r chi.Router, service *usecase.Service, tokens *token.Manager, log *zap.Logger) {
	reviews := adaptor.NewReviewHandler(service.Review, log)
	comments := adaptor.NewCommentHandler(service.Comment, log)

	r.Route("/{titleID}/reviews", func(r chi.Router) {
		r.Get("/", reviews.GetReviews)
		r.Get("/{reviewID}", reviews.GetReview)
		r.Get("/{reviewID}/comments", comments.GetComments)
		r.Get("/{reviewID}/comments/{commentID}", comments.GetComment)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, log))

			r.Post("/", reviews.CreateReview)
			r.Put("/{reviewID}", reviews.UpdateReview)
			r.Patch("/{reviewID}", reviews.UpdateReview)
			r.Delete("/{reviewID}", reviews.DeleteReview)

			r.Post("/{reviewID}/comments", comments.CreateComment)
			r.Put("/{reviewID}/comments/{commentID}", comments.UpdateComment)
			r.Patch("/{reviewID}/comments/{commentID}", comments.UpdateComment)
			r.Delete("/{reviewID}/comments/{commentID}", comments.DeleteComment)
		})
	})
}
