package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
	"autohub/internal/slugify"
)

// ListPosts serves the public blog: published entries only.
func ListPosts(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var posts []models.BlogPost
		err := db.Where("is_published = ?", true).Order("created_at desc").Find(&posts).Error
		if err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, posts)
	}
}

func GetPost(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		var post models.BlogPost
		if err := db.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, post)
	}
}

func AdminListPosts(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var posts []models.BlogPost
		if err := db.Order("created_at desc").Find(&posts).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, posts)
	}
}

type postReq struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Content     *string `json:"content"`
	CoverImage  *string `json:"cover_image"`
	Author      *string `json:"author"`
	IsPublished *bool   `json:"is_published"`
}

func CreatePost(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" ||
			req.Content == nil || strings.TrimSpace(*req.Content) == "" {
			http.Error(w, "title and content required", http.StatusBadRequest)
			return
		}
		// An explicit slug wins; a blank one is derived from the title.
		slug := ""
		if req.Slug != nil {
			slug = strings.TrimSpace(*req.Slug)
		}
		if slug == "" {
			slug = slugify.Make(*req.Title)
		}
		post := models.BlogPost{
			Title:      strings.TrimSpace(*req.Title),
			Slug:       slug,
			Content:    *req.Content,
			CoverImage: req.CoverImage,
			Author:     req.Author,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if req.IsPublished != nil {
			post.IsPublished = *req.IsPublished
		}
		if err := db.Create(&post).Error; err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, post)
	}
}

func UpdatePost(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req postReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var post models.BlogPost
		if err := db.First(&post, "id = ?", id).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.Title != nil {
			post.Title = strings.TrimSpace(*req.Title)
		}
		if req.Slug != nil {
			post.Slug = strings.TrimSpace(*req.Slug)
		}
		if post.Slug == "" {
			post.Slug = slugify.Make(post.Title)
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.CoverImage != nil {
			post.CoverImage = req.CoverImage
		}
		if req.Author != nil {
			post.Author = req.Author
		}
		if req.IsPublished != nil {
			post.IsPublished = *req.IsPublished
		}
		post.UpdatedAt = time.Now()
		if err := db.Save(&post).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, post)
	}
}

func DeletePost(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.BlogPost{}, "id = ?", id).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"deleted": true})
	}
}
