package blogController

import (
	"barmaja/i18n"
	"barmaja/middleware"
	"barmaja/models"
	"barmaja/services/blogs"
	"barmaja/utils"
	"barmaja/validators"
	blogValidator "barmaja/validators/blog"

	"github.com/gofiber/fiber/v2"
)

const (
	adminPageSize  = 10
	publicPageSize = 6
)

type Handler struct {
	Blogs *blogs.Service
}

func New(service *blogs.Service) *Handler {
	return &Handler{Blogs: service}
}

func postInput(reqData *blogValidator.PostRequest) blogs.PostInput {
	return blogs.PostInput{
		TitleEn:     reqData.TitleEn,
		TitleAr:     reqData.TitleAr,
		ContentEn:   reqData.ContentEn,
		ContentAr:   reqData.ContentAr,
		IsPublished: reqData.IsPublished,
	}
}

func (h *Handler) AdminGetAllPosts(c *fiber.Ctx) error {
	list, pagination, err := h.Blogs.List(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("limit", adminPageSize))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"blogs":      list,
		"pagination": pagination,
	})
}

func (h *Handler) AdminGetPost(c *fiber.Ctx) error {
	post, err := h.Blogs.Get(c.UserContext(), validators.ParamID(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

func (h *Handler) AdminCreatePost(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPost").(*blogValidator.PostRequest)

	post, err := h.Blogs.Create(c.UserContext(), middleware.CurrentActor(c).UserID, postInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

func (h *Handler) AdminUpdatePost(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPost").(*blogValidator.PostRequest)

	post, err := h.Blogs.Update(c.UserContext(), validators.ParamID(c, "id"), postInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

func (h *Handler) AdminDeletePost(c *fiber.Ctx) error {
	if err := h.Blogs.Delete(c.UserContext(), validators.ParamID(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}

func (h *Handler) GetPublishedPosts(c *fiber.Ctx) error {
	list, pagination, err := h.Blogs.ListPublished(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("limit", publicPageSize))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"blogs":      list,
		"pagination": pagination,
	})
}

type postView struct {
	*models.BlogPost
	Title       string `json:"title"`
	ContentHTML string `json:"content_html"`
}

// GetPostBySlug renders a published post in the request language.
func (h *Handler) GetPostBySlug(c *fiber.Ctx) error {
	post, err := h.Blogs.GetPublishedBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	lang := middleware.Lang(c)
	content, err := utils.RenderMarkdown(i18n.Pick(lang, post.ContentEn, post.ContentAr))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", postView{
		BlogPost:    post,
		Title:       i18n.Pick(lang, post.TitleEn, post.TitleAr),
		ContentHTML: content,
	})
}
