package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snapwall/snapwall/config"
	"github.com/snapwall/snapwall/middleware"
	"github.com/snapwall/snapwall/models"
	"github.com/snapwall/snapwall/services"
	"github.com/snapwall/snapwall/utils"
)

// PostController serves the post read endpoints and the create workflow.
type PostController struct {
	db      *gorm.DB
	creator *services.PostCreator
	cfg     config.AppConfig
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB, creator *services.PostCreator, cfg config.AppConfig) *PostController {
	return &PostController{db: db, creator: creator, cfg: cfg}
}

// CreatePost accepts a multipart form (title, text, file) and runs the
// transactional create workflow for the authenticated user.
func (p *PostController) CreatePost(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "title cannot be empty")
		return
	}
	text := utils.Sanitize(ctx.PostForm("text"))

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "no file uploaded")
		return
	}
	defer file.Close()

	candidate := services.UploadCandidate{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}
	if err := services.ValidateAttachment(candidate, p.cfg.MaxUploadBytes); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			utils.Error(ctx, http.StatusBadRequest, 40031, "invalid file type")
		case errors.Is(err, services.ErrInvalidFileSize):
			utils.Error(ctx, http.StatusBadRequest, 40032, "invalid file size")
		default:
			utils.Error(ctx, http.StatusBadRequest, 40033, "file too big")
		}
		return
	}

	post, err := p.creator.Create(ctx.Request.Context(), principal, services.CreateInput{
		Title: title,
		Text:  text,
		File:  candidate,
	})
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Errorw("create post failed", "user_id", principal.SubjectID, "error", err)
		}
		utils.Error(ctx, http.StatusInternalServerError, 50020, "internal server error")
		return
	}

	// The record is durable; cleaning the transient multipart upload is
	// best-effort only.
	if ctx.Request.MultipartForm != nil {
		if err := ctx.Request.MultipartForm.RemoveAll(); err != nil && utils.Sugar != nil {
			utils.Sugar.Warnw("failed to remove transient upload", "error", err)
		}
	}

	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, gin.H{"message": "post created", "uuid": post.UUID})
}

// MyPosts returns the posts owned by the authenticated user.
func (p *PostController) MyPosts(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var posts []models.Post
	if err := p.db.Where("user_id = ?", principal.SubjectID).Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to list posts")
		return
	}

	utils.Success(ctx, viewsOf(posts))
}

// AllPosts returns every post, newest first.
func (p *PostController) AllPosts(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:posts:all"); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	var posts []models.Post
	if err := p.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to list posts")
		return
	}

	payload := viewsOf(posts)
	utils.CacheSetJSON("cache:posts:all", utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// SinglePost returns one post by its external uuid with the owner summary.
func (p *PostController) SinglePost(ctx *gin.Context) {
	postUUID := ctx.Param("uuid")

	var post models.Post
	if err := p.db.Preload("User").Where("uuid = ?", postUUID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "no post found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load post")
		return
	}

	utils.Success(ctx, post.View(true))
}

func viewsOf(posts []models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View(false))
	}
	return views
}
