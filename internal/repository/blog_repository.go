package repository

import (
	"context"
	"errors"

	"github.com/bongo-productions/storefront-api/internal/models"
)

var (
	ErrPostNotFound = errors.New("blog post not found")
)

// BlogRepository defines the interface for blog post access
type BlogRepository interface {
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

// InMemoryBlogRepository serves the fixed set of blog posts
type InMemoryBlogRepository struct {
	posts []models.BlogPost
}

// NewInMemoryBlogRepository creates a blog repository with the post fixtures
func NewInMemoryBlogRepository() *InMemoryBlogRepository {
	posts := []models.BlogPost{
		{
			ID:       1,
			Slug:     "top-5-beginner-instruments",
			Title:    "Top 5 Instruments Every Beginner Should Start With",
			Excerpt:  "Starting your musical journey? Here are the best instruments for beginners that will set you on the path to success.",
			Image:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&auto=format&fit=crop&q=80",
			Date:     "Feb 20, 2026",
			ReadTime: "5 min read",
			Category: "Tips & Guides",
		},
		{
			ID:       2,
			Slug:     "choose-perfect-wedding-band",
			Title:    "How to Choose the Perfect Band for Your Wedding",
			Excerpt:  "Your big day deserves the perfect soundtrack. Learn what to look for when booking a live band for your wedding.",
			Image:    "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&auto=format&fit=crop&q=80",
			Date:     "Feb 15, 2026",
			ReadTime: "4 min read",
			Category: "Events",
		},
		{
			ID:       3,
			Slug:     "rise-of-highlife-music",
			Title:    "The Rise of Highlife Music in Modern Ghana",
			Excerpt:  "Exploring how traditional highlife is blending with contemporary sounds to create a vibrant new wave of Ghanaian music.",
			Image:    "https://images.unsplash.com/photo-1504898770365-14faca6a7320?w=800&auto=format&fit=crop&q=80",
			Date:     "Feb 10, 2026",
			ReadTime: "6 min read",
			Category: "Culture",
		},
		{
			ID:       4,
			Slug:     "guitar-maintenance-guide",
			Title:    "Caring for Your Guitar: A Complete Maintenance Guide",
			Excerpt:  "Keep your guitar sounding its best with these essential maintenance tips from our expert technicians.",
			Image:    "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=800&auto=format&fit=crop&q=80",
			Date:     "Feb 5, 2026",
			ReadTime: "7 min read",
			Category: "Tips & Guides",
		},
		{
			ID:       5,
			Slug:     "corporate-event-setup",
			Title:    "Behind the Scenes: Setting Up for a Corporate Event",
			Excerpt:  "A look at what goes into preparing a professional music setup for large-scale corporate events in Accra.",
			Image:    "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800&auto=format&fit=crop&q=80",
			Date:     "Jan 28, 2026",
			ReadTime: "5 min read",
			Category: "Events",
		},
		{
			ID:       6,
			Slug:     "why-rent-instruments",
			Title:    "Why Renting Instruments Makes Sense for Events",
			Excerpt:  "Discover the benefits of renting professional-grade instruments instead of buying for your next event or session.",
			Image:    "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=800&auto=format&fit=crop&q=80",
			Date:     "Jan 20, 2026",
			ReadTime: "4 min read",
			Category: "Rentals",
		},
	}

	return &InMemoryBlogRepository{posts: posts}
}

// GetAll returns all posts, newest first (fixture order)
func (r *InMemoryBlogRepository) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	out := make([]models.BlogPost, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

// GetBySlug returns a single post by its URL slug
func (r *InMemoryBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			post := p
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}
