package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yon-ln/33s/configs"
	"github.com/Yon-ln/33s/middlewares"
	"github.com/Yon-ln/33s/pkg/resp"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/utils"
)

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthController struct {
	cfg *configs.Config
	r   *render.Renderer
}

func NewAuthController(cfg *configs.Config, r *render.Renderer) *AuthController {
	return &AuthController{cfg: cfg, r: r}
}

// GET /login
func (a *AuthController) LoginPage(c *gin.Context) {
	page, err := a.r.LoginPage("")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		a.fail(c, "username and password are required")
		return
	}

	if req.Username != a.cfg.AdminUser || a.cfg.AdminPasswordHash == "" {
		a.fail(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		a.fail(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(req.Username, "admin", a.cfg.JWTSecret, a.cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.SetCookie(middlewares.TokenCookie, token, int(a.cfg.JWTTTL.Seconds()), "/", "", false, true)
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/admin/menu")
		return
	}
	resp.OK(c, gin.H{"token": token, "role": "admin"})
}

func (a *AuthController) fail(c *gin.Context, msg string) {
	if wantsHTML(c) {
		page, err := a.r.LoginPage(msg)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		c.Data(http.StatusUnauthorized, "text/html; charset=utf-8", page)
		return
	}
	resp.Unauthorized(c, msg)
}
