package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the blog surface. requireAuth guards every mutating
// route; reads stay public.
func RegisterRoutes(app *fiber.App, posts *PostHandler, comments *CommentHandler, requireAuth fiber.Handler) {
	p := app.Group("/api/v1/posts")
	p.Post("/", requireAuth, posts.Create)
	p.Get("/", posts.List)
	p.Get("/sender/:ownerId", posts.ListByOwner)
	p.Get("/:id", posts.GetByID)
	p.Put("/:id", requireAuth, posts.Update)
	p.Delete("/:id", requireAuth, posts.Delete)

	c := app.Group("/api/v1/comments")
	c.Post("/", requireAuth, comments.Create)
	c.Get("/", comments.List)
	c.Get("/post/:postId", comments.ListByPost)
	c.Get("/:id", comments.GetByID)
	c.Put("/:id", requireAuth, comments.Update)
	c.Delete("/:id", requireAuth, comments.Delete)
}
