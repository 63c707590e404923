package api

import (
	"net/http"
)

// routeTable lists every route the API serves, relative to the API prefix.
func routeTable(h *routeHandlers) []route {
	return []route{
		{method: http.MethodGet, pattern: "/", handle: h.systemHandler.index()},
		{method: http.MethodGet, pattern: "/health", handle: h.systemHandler.health()},

		// Contact form
		{method: http.MethodPost, pattern: "/contact", handle: h.contactHandler.createSubmission()},
		{method: http.MethodGet, pattern: "/contact", handle: h.contactHandler.listSubmissions(), admin: true},

		// Newsletter
		{method: http.MethodPost, pattern: "/newsletter", handle: h.newsletterHandler.subscribe()},
		{method: http.MethodGet, pattern: "/newsletter", handle: h.newsletterHandler.listSubscriptions(), admin: true},

		// Content
		{method: http.MethodGet, pattern: "/blog", handle: h.blogPostHandler.listBlogPosts()},
		{method: http.MethodGet, pattern: "/blog/{slug}", handle: h.blogPostHandler.getBlogPost()},
		{method: http.MethodGet, pattern: "/portfolio", handle: h.portfolioHandler.listProjects()},
	}
}
